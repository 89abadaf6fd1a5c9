package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jyotish-backend/internal/infrastructure/observability"
	"jyotish-backend/internal/middleware"
)

// NewRouter assembles the route tree and the middleware chain. Request ID
// runs first so recovery and metrics can correlate; the timeout bounds every
// API route but not /health or /metrics.
func NewRouter(h *Handler, collector *observability.Collector, logger *zap.Logger, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Metrics(collector))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout, logger))

		r.Route("/charts", func(r chi.Router) {
			r.Post("/", h.CreateChart)
			r.Get("/{id}", h.GetChart)
		})
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/doshas", h.AnalyzeDoshas)
			r.Post("/pillars", h.AnalyzePillars)
		})
		r.Post("/relocation/score", h.ScoreRelocation)
	})

	return r
}
