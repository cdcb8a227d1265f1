package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	HTTPRequests           *prometheus.CounterVec
	HTTPLatency            *prometheus.HistogramVec
	HostnameLookupFailures prometheus.Counter
	RateLimitedRequests    prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// A private registry keeps tests isolated from the global default one.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total number of HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),

		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		HostnameLookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_hostname_lookup_failures_total",
			Help: "Number of health checks that could not resolve the local hostname.",
		}),

		RateLimitedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_rate_limited_requests_total",
			Help: "Number of requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.HostnameLookupFailures,
		m.RateLimitedRequests,
	)

	return m
}

// HTTPHooks returns the callbacks expected by the api middleware.
// Keeps prometheus imports out of the middleware package.
func (m *Metrics) HTTPHooks() (
	onRequest func(method, route string, status int, latency time.Duration),
	onRateLimited func(),
) {
	onRequest = func(method, route string, status int, latency time.Duration) {
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.HTTPLatency.WithLabelValues(route).Observe(latency.Seconds())
	}
	onRateLimited = func() {
		m.RateLimitedRequests.Inc()
	}
	return
}

// LookupFailureHook returns the callback the catalog service invokes when
// the health check cannot resolve the hostname.
func (m *Metrics) LookupFailureHook() func() {
	return func() { m.HostnameLookupFailures.Inc() }
}
