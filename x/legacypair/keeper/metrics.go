package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the adapter
type Metrics struct {
	// Translated operations by verb and outcome
	OperationsTotal *prometheus.CounterVec
	// Latency of building the translated effect list
	TranslationLatency prometheus.Histogram
	// Backend simulations performed, by kind
	SimulationsTotal *prometheus.CounterVec
}

var (
	metricsOnce   sync.Once
	moduleMetrics *Metrics
)

// ModuleMetrics creates and registers the adapter metrics (singleton pattern)
func ModuleMetrics() *Metrics {
	metricsOnce.Do(func() {
		moduleMetrics = &Metrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "astroport",
					Subsystem: "legacypair",
					Name:      "operations_total",
					Help:      "Total translated operations by verb and outcome",
				},
				[]string{"op", "outcome"},
			),
			TranslationLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "astroport",
					Subsystem: "legacypair",
					Name:      "translation_latency_seconds",
					Help:      "Time spent building the translated effect list",
					Buckets:   prometheus.DefBuckets,
				},
			),
			SimulationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "astroport",
					Subsystem: "legacypair",
					Name:      "simulations_total",
					Help:      "Backend simulations performed by kind",
				},
				[]string{"kind"},
			),
		}
	})
	return moduleMetrics
}

// observeOp records a completed operation with its outcome
func (m *Metrics) observeOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.OperationsTotal.WithLabelValues(op, outcome).Inc()
}
