// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Inkdex HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers and the background news worker.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/inkdex/internal/api"
	"github.com/taibuivan/inkdex/internal/audit"
	"github.com/taibuivan/inkdex/internal/auth"
	"github.com/taibuivan/inkdex/internal/comic"
	"github.com/taibuivan/inkdex/internal/item"
	"github.com/taibuivan/inkdex/internal/news"
	"github.com/taibuivan/inkdex/internal/pipeline"
	"github.com/taibuivan/inkdex/internal/platform/config"
	"github.com/taibuivan/inkdex/internal/platform/constants"
	"github.com/taibuivan/inkdex/internal/platform/migration"
	pgstore "github.com/taibuivan/inkdex/internal/platform/postgres"
	redisstore "github.com/taibuivan/inkdex/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "inkdex"))
	slog.SetDefault(log)

	log.Info("[Inkdex] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "inkdex"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewPostgresRepository(pool))
	gate := pipeline.NewGate(authService)

	auditLogger := audit.NewLogger(audit.NewPostgresRepository(pool), audit.SystemClock{})
	auditHandler := audit.NewHandler(auditLogger, gate)

	newsStore := news.NewPostgresRepository(pool)
	newsUpdater := news.NewUpdater(newsStore, news.NewHTTPFetcher(cfg.SourceSiteURL), log)

	// The background context outlives startupCtx; the worker stops when the
	// process-wide context is cancelled at shutdown.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if cfg.NewsUpdatesEnabled {
		go newsUpdater.Run(workerCtx)
		log.Info("news_updater_started")
	}

	// The comic repository also answers per-item navigation, so it backs
	// both domain services.
	comicRepository := comic.NewPostgresRepository(pool)
	navigationCache := comic.NewRedisNavigationCache(rdb, log)

	comicService := comic.NewService(gate, pool, comicRepository, auditLogger, newsStore, newsUpdater, navigationCache)
	comicHandler := comic.NewHandler(comicService)

	itemService := item.NewService(gate, pool, item.NewPostgresRepository(pool), comicRepository, auditLogger)
	itemHandler := item.NewHandler(itemService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comic:     comicHandler,
		Item:      itemHandler,
		Audit:     auditHandler,
	}

	server := api.NewServer(workerCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
