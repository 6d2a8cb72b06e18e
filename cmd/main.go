package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/uni-verse/universe-backend/internal/cache"
	"github.com/uni-verse/universe-backend/internal/config"
	"github.com/uni-verse/universe-backend/internal/db"
	"github.com/uni-verse/universe-backend/internal/handlers"
	"github.com/uni-verse/universe-backend/internal/logger"
	"github.com/uni-verse/universe-backend/internal/matching"
	"github.com/uni-verse/universe-backend/internal/observability"
	"github.com/uni-verse/universe-backend/internal/repos"
	"github.com/uni-verse/universe-backend/internal/server"
	"github.com/uni-verse/universe-backend/internal/services"
)

func main() {
	// Env
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Config load failed", "error", err)
	}

	// Tracing
	shutdownTracing, tracingEnabled, err := observability.SetupTracing(context.Background(), cfg.TraceExporter, log)
	if err != nil {
		log.Warn("Tracing init failed, continuing without", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Cache (optional)
	catalogCache, err := cache.New(log)
	if err != nil {
		log.Warn("Redis cache unavailable, continuing uncached", "error", err)
		catalogCache = nil
	}

	// Repos
	log.Info("Setting up repos...")
	catalogRepo := repos.NewCatalogRepo(thePG, log)

	// Engine + services
	log.Info("Setting up services...")
	engine := matching.NewEngine(log)
	matchService := services.NewMatchService(thePG, log, catalogRepo, engine)
	catalogService := services.NewCatalogService(thePG, log, catalogRepo, catalogCache)

	// Handlers
	log.Info("Setting up handlers...")
	matchHandler := handlers.NewMatchHandler(log, matchService)
	catalogHandler := handlers.NewCatalogHandler(log, catalogService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		MatchHandler:   matchHandler,
		CatalogHandler: catalogHandler,
		AllowOrigins:   cfg.CORSAllowOrigins,
		Tracing:        tracingEnabled,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
