// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/handlers"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/middleware"
)

// Banner is the body served at GET /
const Banner = "puzzlebox API v1"

// NewRouter wires every route. images serves /images/* and may be nil when
// puzzle images are hosted elsewhere.
func NewRouter(svc *identifier.Service, images http.Handler, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.WithLogging)

	// Initialize handlers
	puzzleHandler := handlers.NewPuzzleHandler(svc, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(svc, cfg)
	errorHandler := handlers.NewErrorHandler(svc, cfg)
	telemetryHandler := handlers.NewTelemetryHandler(svc, cfg)

	requireAdmin := middleware.RequireAdmin(cfg.AdminKey)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	// Puzzles
	r.Route("/puzzles", func(r chi.Router) {
		r.Post("/", puzzleHandler.Create)
		r.Get("/", puzzleHandler.List)
		r.Get("/{code}", puzzleHandler.Get)
		r.With(requireAdmin).Delete("/{code}", puzzleHandler.Delete)
	})

	// Feedback and error logs (reads are admin only)
	r.Route("/feedback", func(r chi.Router) {
		r.Post("/", feedbackHandler.Add)
		r.With(requireAdmin).Get("/", feedbackHandler.List)
		r.With(requireAdmin).Delete("/{id}", feedbackHandler.Delete)
	})
	r.Route("/errors", func(r chi.Router) {
		r.Post("/", errorHandler.Add)
		r.With(requireAdmin).Get("/", errorHandler.List)
		r.With(requireAdmin).Delete("/{id}", errorHandler.Delete)
	})

	// Telemetry
	r.Get("/session", telemetryHandler.Session)
	r.Route("/telemetry", func(r chi.Router) {
		r.Post("/", telemetryHandler.Record)
		r.Post("/start", telemetryHandler.Start)
		r.Post("/solve", telemetryHandler.Solve)
	})

	// Stored puzzle images
	if images != nil {
		r.Handle("/images/*", http.StripPrefix("/images/", images))
	}

	return r
}
