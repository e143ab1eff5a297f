// Package server exposes the SplitFit HTTP API: workout logging, the
// training profile, split-day rotation, body metrics and recommendations.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/splitfit/internal/storage"
)

// Completer produces a free-text recommendation for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	rec    Completer
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. rec may be nil when no
// recommendation backend is configured; the endpoint then returns 503.
func New(db *storage.DB, rec Completer, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		rec:    rec,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Use(s.resolveUser)

		r.Get("/templates", s.handleTemplates)
		r.Get("/split/next", s.handleNextSplitDay)

		r.Route("/workouts", func(r chi.Router) {
			r.Post("/", s.handleCreateWorkout)
			r.Get("/", s.handleListWorkouts)
			r.Get("/{id}", s.handleGetWorkout)
			r.Delete("/{id}", s.handleDeleteWorkout)
		})

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)
		r.Post("/profile/exclusions", s.handleSetExclusion)

		r.Get("/metrics", s.handleListMetrics)
		r.Post("/metrics", s.handleCreateMetric)

		r.Get("/exercises", s.handleExerciseNames)
		r.Get("/performance", s.handlePerformance)
		r.Get("/insights", s.handleInsights)
		r.Get("/stats/quality", s.handleQualityStats)
		r.Get("/stats/supplements", s.handleSupplementStats)

		r.Post("/recommendations", s.handleRecommendation)
	})
}
