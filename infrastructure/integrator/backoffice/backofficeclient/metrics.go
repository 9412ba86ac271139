package backofficeclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
)

const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultError    = "error"
)

var (
	backendCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console",
		Subsystem: "backoffice",
		Name:      "calls_total",
		Help:      "Total number of back-office API calls broken down by operation and result.",
	}, []string{"operation", "result"})

	backendLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "console",
		Subsystem: "backoffice",
		Name:      "call_latency_seconds",
		Help:      "Latency distribution for back-office API calls.",
		Buckets: []float64{
			0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5, 10, 30,
		},
	}, []string{"operation", "result"})
)

func callResult(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case backofficedomain.IsRejection(err):
		return resultRejected
	default:
		return resultError
	}
}

func observeCall(operation string, err error, elapsed time.Duration) {
	result := callResult(err)
	backendCalls.WithLabelValues(operation, result).Inc()
	backendLatency.WithLabelValues(operation, result).Observe(elapsed.Seconds())
}
