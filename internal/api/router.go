package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes configured.
// The health endpoint is unauthenticated; everything else requires bearer auth.
// Rate limiting is applied globally: 60 requests per minute per IP.
func NewRouter(handlers *Handlers, token string, db dbPinger, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))

		r.Post("/api/v1/trips/generate", handlers.GenerateTrip)
		r.Get("/api/v1/facts/random", handlers.RandomFact)

		r.Route("/api/v1/saved-trips", func(r chi.Router) {
			r.Get("/", handlers.ListSavedTrips)
			r.Post("/", handlers.CreateSavedTrip)
			r.Get("/{id}", handlers.GetSavedTrip)
			r.Patch("/{id}/status", handlers.UpdateStatus)
			r.Delete("/{id}", handlers.DeleteSavedTrip)
		})
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
