package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"artmarket-partner-console/internal/logx"
)

const (
	viewActive   = "active"
	viewRequests = "requests"
	viewHistory  = "history"
	viewSession  = "session"
	viewSystem   = "system"

	unmatchedRoute = "unmatched"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partner_console",
			Name:      "http_requests_total",
			Help:      "Console HTTP requests by dashboard view, route and status.",
		},
		[]string{"view", "method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "partner_console",
			Name:      "http_request_duration_seconds",
			Help:      "Console HTTP request latency by dashboard view and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"view", "method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration)
}

// Observability counts and times requests per dashboard view and writes an access log.
func Observability(logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// delivery ids must not become labels
			route := routePattern(r)
			view := viewOf(route)
			tm := time.Since(start)
			status := strconv.Itoa(ww.Status())

			httpRequestsTotal.WithLabelValues(view, r.Method, route, status).Inc()
			httpRequestDuration.WithLabelValues(view, r.Method, route, status).Observe(tm.Seconds())

			logger.Info("http request",
				logx.String("req_id", chimw.GetReqID(r.Context())),
				logx.String("view", view),
				logx.String("method", r.Method),
				logx.String("path", route),
				logx.Int("status", ww.Status()),
				logx.Duration("duration", tm),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// viewOf maps a route pattern to the dashboard view it serves.
func viewOf(route string) string {
	switch {
	case strings.HasPrefix(route, "/deliveries/active"):
		return viewActive
	case strings.HasPrefix(route, "/deliveries/requests"):
		return viewRequests
	case strings.HasPrefix(route, "/deliveries/history"):
		return viewHistory
	case strings.HasPrefix(route, "/session"):
		return viewSession
	default:
		return viewSystem
	}
}
