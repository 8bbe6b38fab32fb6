// Package api provides HTTP router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scamtrap/mantis/internal/authority"
	"github.com/scamtrap/mantis/internal/config"
	"github.com/scamtrap/mantis/internal/database"
	"github.com/scamtrap/mantis/internal/detect"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg *config.Config, engine *detect.Engine, catalogue *authority.Catalogue, store database.Store) http.Handler {
	r := chi.NewRouter()

	handler := NewHandler(engine, catalogue, store)

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", handler.HealthCheck)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(store))
			r.Use(AuditMiddleware(store))
			r.Use(RateLimitMiddleware(cfg.RateLimits.RequestsPerMinute))

			// Message classification
			r.Post("/honeypot/message", handler.ProcessMessage)

			// Authority catalogue
			r.Get("/authorities", handler.ListAuthorities)
			r.Get("/authorities/{name}", handler.GetAuthority)
			r.Post("/authorities/{name}/refresh", handler.RefreshAuthority)

			// Audit logs
			r.Get("/audit", handler.GetAuditLogs)
		})

		// Admin routes (API key management)
		// In production, these should be protected differently
		r.Route("/admin", func(r chi.Router) {
			r.Post("/keys", handler.CreateAPIKey)
			r.Get("/keys", handler.ListAPIKeys)
			r.Delete("/keys/{id}", handler.DeleteAPIKey)
		})
	})

	return r
}
