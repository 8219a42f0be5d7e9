package http

import (
	"net/http"

	"home-inventory/internal/http/handlers"
	rl "home-inventory/internal/http/rate_limiter"
)

// InstallationAuth rejects requests that carry neither a valid Bearer
// session token nor a parseable X-Installation-Id header. Handlers resolve
// the installation themselves from the same sources.
func InstallationAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := handlers.InstallationFromRequest(r); !ok {
			http.Error(w, "missing or invalid installation id", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit throttles callers per installation, falling back to the remote
// address for unauthenticated routes.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if id, ok := handlers.InstallationFromRequest(r); ok {
			key = id.String()
		}

		if !rl.GetVisitor(key).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
