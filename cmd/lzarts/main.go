// Package main is the entry point for the LZ Arts studio server.
// It loads configuration, connects to the session store, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"lzarts/internal/ai"
	"lzarts/internal/config"
	"lzarts/internal/handlers"
	"lzarts/internal/render"
	"lzarts/internal/router"
	"lzarts/internal/session"
	"lzarts/internal/store"
	"lzarts/internal/video"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load a local .env if present; real deployments set the environment.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"projects_dir", cfg.ProjectsDir,
	)

	// Connect to Valkey (Redis-compatible session store).
	valkeyClient := redis.NewClient(&redis.Options{
		Addr:     cfg.ValkeyAddr(),
		Password: cfg.ValkeyPassword,
	})
	if err := valkeyClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Directory-backed project store and ffmpeg video exporter share the
	// projects root; exported clips land next to the user directories.
	projectStore := store.NewFSStore(cfg.ProjectsDir)
	videoExporter := video.NewExporter(cfg.FFmpegPath, cfg.ProjectsDir)

	// AI logo generation is optional — the studio works without it.
	var logoProvider ai.LogoProvider
	if cfg.DeepAIKey != "" {
		logoProvider = ai.NewDeepAI(ai.ProviderConfig{
			APIKey:  cfg.DeepAIKey,
			BaseURL: cfg.DeepAIBaseURL,
		})
		slog.Info("ai logo provider initialized", "provider", logoProvider.Name())
	} else {
		slog.Warn("DEEPAI_API_KEY not set — AI logo generation disabled")
	}

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(renderer, sessionStore)
	studioHandlers := handlers.NewStudio(renderer, sessionStore, projectStore, videoExporter, logoProvider, cfg.ProjectsDir)
	projectHandlers := handlers.NewProjects(renderer, sessionStore, projectStore, cfg.ProjectsDir)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, authHandlers, studioHandlers, projectHandlers, cfg.ProjectsDir)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate image generation with video export
	// (ffmpeg encodes a 5s clip) and the external AI call.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
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
