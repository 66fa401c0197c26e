package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Load .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/marlenko/graveyard-management/internal/config"
	"github.com/marlenko/graveyard-management/internal/database"
	"github.com/marlenko/graveyard-management/internal/handler"
	"github.com/marlenko/graveyard-management/internal/middleware"
	"github.com/marlenko/graveyard-management/internal/queue"
	"github.com/marlenko/graveyard-management/internal/receipt"
	"github.com/marlenko/graveyard-management/internal/repository"
	"github.com/marlenko/graveyard-management/internal/router"
	"github.com/marlenko/graveyard-management/internal/store"
)

func main() {
	// Load a local .env file if present; in production the variables
	// come from the real environment and this is a no-op.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// MySQL backs only the account subsystem (users and refresh
	// tokens).  All graveyard, map and payment data is held in memory.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: when unreachable the response cache and rate
	// limiter silently disable themselves.
	rdb := config.NewRedisClient()

	// In-memory stores, populated with the demo data set.
	maps := store.NewMapStore()
	store.SeedMapStore(maps)
	ledger := store.NewFinanceStore()
	store.SeedFinanceStore(ledger)
	registry := store.SeedRegistry()

	authH := handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db))
	mapH := handler.NewMapHandler(maps, registry)
	finH := handler.NewFinanceHandler(ledger, registry, receipt.New())

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterMaps(e, mapH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterMapAdmin(e, mapH, cfg.JWTSecret)
	router.RegisterFinance(e, finH, cfg.JWTSecret)

	// Consume payment events in the background; the consumer reconnects
	// on broker failures and only ever logs its errors.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
