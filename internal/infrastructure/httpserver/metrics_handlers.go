package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacescope_http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "spacescope_http_request_duration_seconds",
			Help: "HTTP request latency in seconds, by method and route.",
			// Composite routes can wait on several upstreams for up to 8s.
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)
}

// GetRequestsTotal returns the requests total metric for middleware use
func GetRequestsTotal() *prometheus.CounterVec {
	return requestsTotal
}

// GetRequestDuration returns the request duration metric for middleware use
func GetRequestDuration() *prometheus.HistogramVec {
	return requestDuration
}

// LogMetricsInitialization lists the exported series at debug level.
func (s *Server) LogMetricsInitialization() {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(map[string]interface{}{
		"http":             "spacescope_http_requests_total, spacescope_http_request_duration_seconds",
		"upstream":         "spacescope_upstream_attempts_total, spacescope_upstream_breaker_state",
		"aggregation":      "spacescope_cache_lookups_total, spacescope_fallbacks_served_total",
		"metrics_endpoint": "/metrics",
	}).Debug("Prometheus metrics registered")
}

func (s *Server) metricsHandler() http.Handler {
	return promhttp.Handler()
}

// metricsEndpoint serves the default registry through echo.
func (s *Server) metricsEndpoint(c echo.Context) error {
	s.metricsHandler().ServeHTTP(c.Response(), c.Request())
	return nil
}
