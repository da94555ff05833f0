package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ai-blog-api/internal/api"
	"github.com/ai-blog-api/internal/completion"
	"github.com/ai-blog-api/internal/config"
	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/repository"
	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting AI Blog API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// The completion client is built per invocation because the API key is
	// read from system configuration, not the environment.
	completerFor := func(apiKey string) service.Completer {
		clientCfg := completion.DefaultConfig(apiKey)
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
		clientCfg.Model = cfg.OpenAI.Model
		clientCfg.Timeout = cfg.OpenAI.Timeout
		return completion.NewClientWithConfig(clientCfg)
	}

	// Initialize services
	services := service.NewServices(repos, completerFor, cfg, log)

	// Start automation processor
	go services.Automation.StartProcessor(context.Background())
	log.Info().Msg("Automation processor started")

	// Initialize router
	router := api.NewRouter(services, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop automation processor
	services.Automation.StopProcessor()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
