// Package client provides typed HTTP clients for the inventory, product,
// requirements and installation services. Calls are independent and
// at-most-once: no retry, no caching, no coalescing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Session identifies the calling installation. It is passed explicitly to
// every installation-scoped call instead of living in ambient storage.
type Session struct {
	InstallationID uuid.UUID
	Token          string // optional Bearer session token; header auth is used when empty
}

// Client is the shared HTTP plumbing behind the typed resource clients.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client against baseURL. A nil httpClient falls back to
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// call performs one request and decodes a JSON response into out (skipped
// when out is nil). Non-2xx responses become an error naming the failed
// operation and the HTTP status.
func (c *Client) call(ctx context.Context, op, method, path string, sess *Session, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		if sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		} else if sess.InstallationID != uuid.Nil {
			req.Header.Set("X-Installation-Id", sess.InstallationID.String())
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
