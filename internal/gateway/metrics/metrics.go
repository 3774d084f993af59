package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for gateway operations.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDurationMs *prometheus.HistogramVec
	RequestFailures   *prometheus.CounterVec
	CanceledRequests  prometheus.Counter
	ForcedLogouts     prometheus.Counter
}

// New registers and returns gateway metrics collectors.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reelops_gateway_requests_total",
			Help: "Total number of outbound requests by method and status class",
		}, []string{"method", "status"}),
		RequestDurationMs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reelops_gateway_request_duration_ms",
			Help:    "Duration of outbound requests in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method"}),
		RequestFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reelops_gateway_request_failures_total",
			Help: "Total number of failed outbound requests by method",
		}, []string{"method"}),
		CanceledRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reelops_gateway_canceled_requests_total",
			Help: "Total number of requests aborted by caller cancellation",
		}),
		ForcedLogouts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reelops_gateway_forced_logouts_total",
			Help: "Total number of forced logouts triggered by an Access Denied response",
		}),
	}
}
