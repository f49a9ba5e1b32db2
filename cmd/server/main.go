package main

import (
	"context"
	"log"

	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/internal/config"
	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/cache"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/internal/interfaces/http/handlers"
	"github.com/JulienRip/riskbanking/internal/interfaces/http/router"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	ctx := context.Background()

	// Initialize infrastructure
	metrics := monitoring.NewMetrics()

	responseCache, err := cache.New(&cfg.Cache, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to create response cache", err)
	}

	store, err := dataset.NewStore(cfg.Dataset.CacheCapacity, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to create dataset store", err)
	}

	// Initialize application services
	prediction := appservice.NewPredictionAppService(
		store,
		domainservice.NewScoringService(),
		domainservice.NewSnapshotService(),
		appLogger,
	)
	dataviz := appservice.NewDatavizAppService(store, appLogger)

	// Initialize HTTP handlers and router
	r := router.New(
		cfg,
		appLogger,
		metrics,
		responseCache,
		handlers.NewHealthHandler(),
		handlers.NewPredictHandler(prediction, cfg.Dataset.DefaultPath, metrics, appLogger),
		handlers.NewDatavizHandler(dataviz, cfg.Dataset.DefaultPath, appLogger),
	)

	if err := r.Start(); err != nil {
		appLogger.Fatal(ctx, "HTTP server failed", err)
	}
}
