package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tyler/huntboard/internal/api"
	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/logger"
	"github.com/tyler/huntboard/internal/repository"
	"github.com/tyler/huntboard/internal/service"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	appRepo := repository.NewApplicationRepository(db)
	contactRepo := repository.NewContactRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	contentRepo := repository.NewContentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// The capability descriptor is computed once here; the pipeline never
	// probes the environment itself.
	caps := cfg.Capabilities()

	var generator service.Generator
	if caps.GenAI {
		queryGenerator, err := service.NewQueryGenerator(context.Background(), &cfg.GenAI)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize query generator")
		}
		generator = queryGenerator
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, job search will return mock data")
	}
	if !caps.Search {
		appLogger.Warn("SERP_API_KEY not set, job search will return mock data")
	}

	fetcher := service.NewListingFetcher(&cfg.Search)

	// Initialize services
	searchService := service.NewJobSearchService(caps, generator, fetcher, cfg.GenAI.NumQueries, appLogger)
	sessionService := service.NewSessionService(appRepo, appLogger)
	trackerService := service.NewTrackerService(appRepo, contactRepo, revenueRepo, contentRepo, reviewRepo, appLogger)
	statsService := service.NewStatsService(appRepo, contactRepo, revenueRepo, contentRepo, reviewRepo, cfg.Goals)

	// Setup router
	router := api.SetupRouter(searchService, sessionService, trackerService, statsService, cfg, appLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.Infof("Starting API server: port=%d, mode=%s", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
