// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/wolvhq/wolv-site/internal/config"
	"github.com/wolvhq/wolv-site/internal/handler"
	"github.com/wolvhq/wolv-site/internal/handler/api"
	"github.com/wolvhq/wolv-site/internal/logging"
	"github.com/wolvhq/wolv-site/internal/middleware"
	"github.com/wolvhq/wolv-site/internal/mirror"
	"github.com/wolvhq/wolv-site/internal/remote"
	"github.com/wolvhq/wolv-site/internal/scheduler"
	"github.com/wolvhq/wolv-site/internal/sitedata"
	"github.com/wolvhq/wolv-site/internal/version"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "wolvsite - Wolv Events site backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_SERVER_PORT          Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_ENV                  Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_REMOTE_URL           Remote content platform URL (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_REMOTE_ANON_KEY      Remote anon key (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_REMOTE_SERVICE_KEY   Remote service key, server-only (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_MIRROR_PATH          SQLite mirror path (default: ./data/mirror.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_REDIS_URL            Redis URL for a shared mirror (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WOLV_REFRESH_CRON         Background refresh spec (default: @every 5m)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("wolvsite %s\n", version.String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize mirror store
	mirrorCfg := mirror.DefaultConfig()
	mirrorCfg.Path = cfg.MirrorPath
	if cfg.UseRedisMirror() {
		mirrorCfg.Type = "redis"
		mirrorCfg.RedisURL = cfg.RedisURL
		mirrorCfg.Prefix = cfg.MirrorPrefix
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.MirrorPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	slog.Info("initializing mirror", "type", mirrorCfg.Type)
	mirrorStore, err := mirror.New(mirrorCfg)
	if err != nil {
		return fmt.Errorf("initializing mirror: %w", err)
	}
	defer func() {
		if err := mirrorStore.Close(); err != nil {
			slog.Error("error closing mirror", "error", err)
		}
	}()

	// Upgrade logger to also write WARN and ERROR records to the event
	// log table when the mirror is SQLite-backed.
	if sqliteMirror, ok := mirrorStore.(*mirror.SQLiteStore); ok {
		textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
		logger = slog.New(logging.NewEventLogHandler(textHandler, sqliteMirror.DB()))
		slog.SetDefault(logger)
		slog.Info("event log integration enabled", "min_level", "warn")
	}

	// Initialize remote client. Missing credentials degrade to
	// defaults-plus-mirror operation rather than failing startup.
	var client *remote.Client
	client, err = remote.NewClient(remote.Config{
		URL:        cfg.RemoteURL,
		AnonKey:    cfg.RemoteAnonKey,
		ServiceKey: cfg.RemoteServiceKey,
	})
	switch {
	case errors.Is(err, remote.ErrNotConfigured):
		client = nil
		slog.Warn("remote content store not configured, serving defaults and mirror only")
	case err != nil:
		return fmt.Errorf("initializing remote client: %w", err)
	default:
		slog.Info("remote content store configured", "url", cfg.RemoteURL, "service_key", client.HasServiceKey())
	}

	// Initialize the site data store and begin reconciliation.
	store := sitedata.New(mirrorStore, client, logger)
	store.Init(context.Background())
	defer store.Close()

	// Background refresh converges long-running processes with the
	// remote store after the optimistic inconsistency window.
	if client != nil && cfg.RefreshInterval != "" {
		sched := scheduler.New(store, logger)
		if err := sched.Start(cfg.RefreshInterval); err != nil {
			return fmt.Errorf("starting refresh scheduler: %w", err)
		}
		defer sched.Stop()
		slog.Info("background refresh scheduled", "spec", cfg.RefreshInterval)
	}

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	// Rate limiter for the auth endpoints (10 req/s with burst of 20 per IP)
	authRateLimiter := middleware.NewGlobalRateLimiter(10.0, 20)
	sessionAuth := middleware.NewSessionAuth(client, logger)

	apiHandler := api.NewHandler(store, client, logger)
	healthHandler := handler.NewHealthHandler(store, mirrorStore)

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Mount("/api/v1", apiHandler.Routes(sessionAuth, authRateLimiter))
	slog.Info("REST API v1 mounted at /api/v1")

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Drain outstanding remote writes before releasing the mirror.
	store.Flush()

	slog.Info("server stopped")
	return nil
}
