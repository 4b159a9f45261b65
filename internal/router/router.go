// Package router sets up all HTTP routes and middleware chains for the
// PhishForge server. Generation endpoints get their own rate-limited group;
// everything else is read-mostly CRUD.
package router

import (
	"github.com/go-chi/chi/v5"

	"phishforge/internal/handlers"
	"phishforge/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — never rate-limited.
	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		// Generation endpoints call the AI provider, so they carry the
		// per-IP sliding-window limit.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/generate", api.Generate)
			r.Post("/regenerate/{id}", api.Regenerate)
		})

		// Template CRUD and exports.
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", api.ListTemplates)
			r.Get("/{id}", api.GetTemplate)
			r.Delete("/{id}", api.DeleteTemplate)
			r.Get("/{id}/preview", api.Preview)
			r.Get("/{id}/download", api.Download)
			r.Get("/{id}/download-html", api.DownloadHTML)
		})

		// Catalogue and reporting.
		r.Get("/tactics", api.Tactics)
		r.Get("/history", api.History)
		r.Get("/stats", api.Stats)
		r.Get("/test", api.TestProvider)
	})

	return r
}
