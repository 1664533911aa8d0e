package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ventascli/internal/config"
	"ventascli/internal/middleware"
	"ventascli/internal/services"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Config          *config.Config
	Paths           *config.Paths
	Logger          *slog.Logger
	AnalysisService *services.AnalysisService
	HealthService   *services.HealthService
	Registry        *prometheus.Registry
}

// NewRouter assembles the full middleware chain and mounts every
// handler.
func NewRouter(deps RouterDeps) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(registry)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(metrics.Handler)

	if deps.Config != nil && deps.Config.Server.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			deps.Config.Server.RateLimit.RPS,
			deps.Config.Server.RateLimit.Burst,
			logger)
		r.Use(limiter.Handler)
	}

	analysisHandler := NewAnalysisHandler(deps.AnalysisService, deps.Paths, logger)
	healthHandler := NewHealthHandler(deps.HealthService, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/analysis", analysisHandler.Routes())
		api.Mount("/health", healthHandler.Routes())
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
