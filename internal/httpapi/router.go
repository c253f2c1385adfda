// Package httpapi exposes the scheduling core as an HTTP service: request
// translation, CORS, an optional API-key check, health/info endpoints and
// response shaping. It owns no business logic of its own.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Softileo/schedule-saas/internal/config"
)

const buildVersion = "1.0.0"

// NewRouter assembles the full chi router for the scheduling service.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.MaxSolverTimeLimit + 30*time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "healthy", "version": buildVersion})
	})

	scheduleHandler := newScheduleHandler(cfg.DefaultSolverTimeLimit, cfg.MaxSolverTimeLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"message": "Schedule generation API v1",
				"version": buildVersion,
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware(cfg.APIKey))
			r.Post("/schedules", scheduleHandler.Generate)
		})
	})

	return r
}
