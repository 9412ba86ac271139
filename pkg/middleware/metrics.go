package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of console HTTP requests by route and status class.",
	}, []string{"route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "console",
		Subsystem: "http",
		Name:      "latency_seconds",
		Help:      "Latency distribution of console HTTP requests.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"route", "status"})
)

type routeKey struct{}

type routeLabel struct {
	path string
}

// RouteLabel grava o padrão da rota casada para o middleware de métricas.
func RouteLabel(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if label, ok := r.Context().Value(routeKey{}).(*routeLabel); ok {
				label.path = path
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics conta e mede as requisições por rota e classe de status.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			label := &routeLabel{path: unmatchedRoute}
			rec := newLoggingResponseWriter(w)

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), routeKey{}, label)))

			status := statusClass(rec.statusCode)
			httpRequests.WithLabelValues(label.path, status).Inc()
			httpLatency.WithLabelValues(label.path, status).Observe(time.Since(start).Seconds())
		})
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
