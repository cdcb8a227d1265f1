package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atu-cloudnative/catalog-service/internal/api/handler"
	apimw "github.com/atu-cloudnative/catalog-service/internal/api/middleware"
	"github.com/atu-cloudnative/catalog-service/internal/metrics"
	"github.com/atu-cloudnative/catalog-service/internal/ratelimiter"
	"github.com/atu-cloudnative/catalog-service/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.CatalogService,
	limiter *ratelimiter.Limiter,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	onRequest, onRateLimited := m.HTTPHooks()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer) // recover panics, return 500
	r.Use(chimw.RealIP)    // trust X-Forwarded-For / X-Real-IP
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger, onRequest))
	if limiter.Enabled() {
		r.Use(apimw.RateLimit(limiter, logger, onRateLimited))
	}

	// --- handler instances ---
	home := handler.NewHomeHandler(svc)
	hh := handler.NewHealthHandler(svc, logger)

	// --- routes ---
	r.Get("/", home.Welcome)
	r.Get("/greeting/{name}", home.Greeting)
	r.Get("/health", hh.Health)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
