package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"home-inventory/internal/auth"
	"home-inventory/internal/config"
	"home-inventory/internal/db"
	httpx "home-inventory/internal/http"
	"home-inventory/internal/http/handlers"
	rl "home-inventory/internal/http/rate_limiter"
	"home-inventory/internal/pairing"
	"home-inventory/internal/repo"
)

// @title Home Inventory API
// @version 1.0
// @description REST API for household inventory, product catalog, minimum-stock requirements and installation pairing.
// @host localhost:8085
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	handlers.SetPairingCodeTTL(cfg.PairingCodeTTL)

	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	handlers.SetPairingStore(pairing.NewRedisStore(rdb, ctx))

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetInventoryRepo(repo.NewPostgresInventoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetRequirementRepo(repo.NewPostgresRequirementRepository(database))
	handlers.SetInstallationRepo(repo.NewPostgresInstallationRepository(database))

	r := httpx.NewRouter()
	log.Println("✅ Server running on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
