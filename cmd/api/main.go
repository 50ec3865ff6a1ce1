// Copyright (c) 2026 Bookly. All rights reserved.

// Command api is the entry point for the Bookly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
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

	"github.com/tidol/bookly/internal/api"
	"github.com/tidol/bookly/internal/core/author"
	"github.com/tidol/bookly/internal/core/book"
	"github.com/tidol/bookly/internal/core/chapter"
	"github.com/tidol/bookly/internal/core/genre"
	"github.com/tidol/bookly/internal/library/bookmark"
	"github.com/tidol/bookly/internal/library/follow"
	"github.com/tidol/bookly/internal/library/history"
	"github.com/tidol/bookly/internal/platform/config"
	"github.com/tidol/bookly/internal/platform/constants"
	"github.com/tidol/bookly/internal/platform/migration"
	pgstore "github.com/tidol/bookly/internal/platform/postgres"
	redisstore "github.com/tidol/bookly/internal/platform/redis"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/social/comment"
	"github.com/tidol/bookly/internal/social/review"
	"github.com/tidol/bookly/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Bookly] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
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

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewSessionRepository(pool),
		auth.NewResetTokenRepository(rdb),
		auth.NewVerificationTokenRepository(rdb),
		jwtSvc,
	)

	authorService := author.NewService(author.NewPostgresRepository(pool), log)
	bookService := book.NewService(book.NewPostgresRepository(pool), authorService, log)
	historyService := history.NewService(history.NewPostgresRepository(pool), log)
	chapterService := chapter.NewService(chapter.NewPostgresRepository(pool), bookService, historyService, log)
	genreService := genre.NewService(genre.NewPostgresRepository(pool), log)
	bookmarkService := bookmark.NewService(bookmark.NewPostgresRepository(pool), log)
	followService := follow.NewService(follow.NewPostgresRepository(pool), log)
	commentService := comment.NewService(comment.NewPostgresRepository(pool), log)
	reviewService := review.NewService(review.NewPostgresRepository(pool), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Search:    api.NewSearchHandler(bookService, authorService),
		Auth:      auth.NewHandler(authService),
		Author:    author.NewHandler(authorService),
		Book:      book.NewHandler(bookService),
		Chapter:   chapter.NewHandler(chapterService),
		Genre:     genre.NewHandler(genreService),
		History:   history.NewHandler(historyService),
		Bookmark:  bookmark.NewHandler(bookmarkService),
		Follow:    follow.NewHandler(followService),
		Comment:   comment.NewHandler(commentService),
		Review:    review.NewHandler(reviewService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
