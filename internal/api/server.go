// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tidol/bookly/internal/core/author"
	"github.com/tidol/bookly/internal/core/book"
	"github.com/tidol/bookly/internal/core/chapter"
	"github.com/tidol/bookly/internal/core/genre"
	"github.com/tidol/bookly/internal/library/bookmark"
	"github.com/tidol/bookly/internal/library/follow"
	"github.com/tidol/bookly/internal/library/history"
	"github.com/tidol/bookly/internal/platform/config"
	"github.com/tidol/bookly/internal/platform/constants"
	"github.com/tidol/bookly/internal/platform/middleware"
	"github.com/tidol/bookly/internal/social/comment"
	"github.com/tidol/bookly/internal/social/review"
	"github.com/tidol/bookly/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Search is the combined books+authors lookup.
	Search http.HandlerFunc

	// Auth handles identity routes (register, login, sessions, passwords).
	Auth *auth.Handler

	// Author handles public writing profiles and their lifecycle.
	Author *author.Handler

	// Book handles the catalogue and the recent-updates feed.
	Book *book.Handler

	// Chapter handles reading units and their index under books.
	Chapter *chapter.Handler

	// Genre handles category labels.
	Genre *genre.Handler

	// History handles per-reader chapter history.
	History *history.Handler

	// Bookmark handles saved reading positions.
	Bookmark *bookmark.Handler

	// Follow handles book subscriptions.
	Follow *follow.Handler

	// Comment handles chapter discussions.
	Comment *comment.Handler

	// Review handles scored book reviews.
	Review *review.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Route("/authors", h.Author.RegisterRoutes)

		// Chapters and reviews nest under the books they belong to.
		api.Route("/books", func(books chi.Router) {
			h.Book.RegisterRoutes(books)
			h.Chapter.RegisterBookRoutes(books)
			h.Review.RegisterBookRoutes(books)
		})

		// Comments nest under the chapters they discuss.
		api.Route("/chapters", func(chapters chi.Router) {
			h.Chapter.RegisterRoutes(chapters)
			h.Comment.RegisterChapterRoutes(chapters)
		})

		api.Route("/genres", h.Genre.RegisterRoutes)
		api.Route("/history", h.History.RegisterRoutes)
		api.Route("/bookmarks", h.Bookmark.RegisterRoutes)
		api.Route("/follows", h.Follow.RegisterRoutes)
		api.Route("/comments", h.Comment.RegisterRoutes)
		api.Route("/reviews", h.Review.RegisterRoutes)

		api.Get("/search", h.Search)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
