// Package main is the entry point for the PhishForge server.
// It loads configuration, connects to optional backing services, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phishforge/internal/ai"
	"phishforge/internal/archive"
	"phishforge/internal/cache"
	"phishforge/internal/config"
	"phishforge/internal/generator"
	"phishforge/internal/handlers"
	"phishforge/internal/middleware"
	"phishforge/internal/router"
	"phishforge/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger — JSON in production, readable text in development.
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to the PostgreSQL audit archive (optional — the server keeps
	// working with only the in-memory store).
	var gpArchive *archive.GenerationArchive
	if cfg.ArchiveEnabled() {
		db, err := archive.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to archive database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := archive.Migrate(db); err != nil {
			slog.Error("failed to run archive migrations", "error", err)
			os.Exit(1)
		}
		gpArchive = archive.NewGenerationArchive(db)
	} else {
		slog.Warn("postgres not configured — generation audit archive disabled")
	}

	// Connect to Valkey for the export cache (optional).
	var exportCache *cache.ExportCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		exportCache = cache.NewExportCache(valkeyClient, cache.DefaultExportTTL)
	} else {
		slog.Warn("valkey not configured — export caching disabled")
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"claude": {APIKey: cfg.ClaudeAPIKey},
		"openai": {APIKey: cfg.OpenAIAPIKey},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)
	if !aiRegistry.Ready() {
		slog.Warn("no AI provider configured — all generations will use the fallback synthesizer")
	}

	// Initialize the template store and the generation service.
	templateStore := store.NewTemplateStore()
	genService := generator.NewService(aiRegistry, templateStore, gpArchive, logger)

	// Sliding-window rate limiter for generation endpoints.
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer limiter.Stop()

	// Create the API handler group and wire up the Chi router.
	api := handlers.NewAPI(genService, templateStore, exportCache, aiRegistry)
	r := router.New(api, limiter)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate generation endpoints that wait on LLM
	// responses (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
