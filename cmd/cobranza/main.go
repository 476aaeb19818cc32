// Cobranza server: HTTP API for civil-collection case management, document
// workflows and real-time reload events.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/andeslegal/cobranza/pkg/api"
	"github.com/andeslegal/cobranza/pkg/cleanup"
	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/database"
	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/logger"
	"github.com/andeslegal/cobranza/pkg/services"
	"github.com/andeslegal/cobranza/pkg/storage"
	"github.com/andeslegal/cobranza/pkg/suggest"
	"github.com/andeslegal/cobranza/pkg/version"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("COBRANZA_CONFIG", "cobranza.yaml"),
		"Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()

	// 1. Configuration and logging
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Init(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.Info("Starting cobranza", "version", version.Full(), "port", cfg.Server.Port)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Object storage
	minioService, err := storage.NewMinioService(cfg.Minio)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if err := minioService.EnsureBucket(ctx); err != nil {
		slog.Error("Failed to ensure storage bucket", "bucket", cfg.Minio.Bucket, "error", err)
		os.Exit(1)
	}
	slog.Info("Object storage ready", "bucket", cfg.Minio.Bucket)

	// 4. Domain services
	caseService := services.NewCaseService(dbClient.Client)
	documentService := services.NewDocumentService(dbClient.Client, minioService)
	suggestionService := services.NewSuggestionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.DB())
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Court gateway and document workflows
	pjudClient := gateway.NewPJUDClient(cfg.PJUD.BaseURL, cfg.PJUD.Timeout())
	docIntel := gateway.NewDocIntelClient(gateway.DocIntelConfig{
		BaseURL:  cfg.DocIntel.BaseURL,
		APIToken: cfg.DocIntel.APIToken,
		Timeout:  cfg.DocIntel.Timeout(),
	})
	registry := workflow.NewRegistry(docIntel, docIntel, workflow.NewPJUDSender(pjudClient),
		events.NewAnalysisPublisher(eventPublisher))
	selector := suggest.NewSelector(suggestionService, documentService, caseService, pjudClient, eventPublisher)

	// 7. Background retention
	cleanupService := cleanup.NewService(cfg.Retention, caseService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	server := api.NewServer(cfg, dbClient,
		caseService, documentService, suggestionService, eventService,
		selector, registry, pjudClient, eventPublisher, connManager)
	server.SetWarningsService(services.NewSystemWarningsService())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
