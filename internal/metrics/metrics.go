// Package metrics defines the service's Prometheus collectors and the HTTP
// instrumentation middleware.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchparty_http_requests_total",
			Help: "Total HTTP requests handled, by method, route, and status.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchparty_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// WSConnections tracks currently connected websocket participants.
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchparty_ws_connections",
			Help: "Currently connected websocket participants.",
		},
	)

	// VotesRecorded counts accepted vote submissions.
	VotesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "watchparty_votes_recorded_total",
			Help: "Total votes recorded (including replacements).",
		},
	)
)

// Middleware instruments every request with the request counter and latency
// histogram. The route label is the chi route pattern, not the raw path, to
// keep label cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
