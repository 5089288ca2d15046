// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ResultSuccess = "success"

// Metrics contains the gateway's custom collectors.
type Metrics struct {
	OperationsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hris_gateway_operations_total",
				Help: "Total number of mediated operations by operation and result",
			},
			[]string{"operation", "result"},
		),
	}
}

// RecordOperation counts one finished call. A nil receiver is a no-op so
// callers built without metrics need no guard.
func (m *Metrics) RecordOperation(operation, result string) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}
