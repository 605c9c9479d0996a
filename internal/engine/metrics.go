package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weierstrass"

type metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	failures   prometheus.Counter
}

// newMetrics registers the engine's collectors with reg, labelled with the curve name. A nil registerer disables
// registration; the collectors still count.
func newMetrics(reg prometheus.Registerer, curveName string) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of point operations evaluated, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent evaluating point operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"operation"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selfcheck_failures_total",
			Help:      "Number of failed self-check properties.",
		}),
	}
	if reg == nil {
		return m, nil
	}

	reg = prometheus.WrapRegistererWith(prometheus.Labels{"curve": curveName}, reg)
	for _, c := range []prometheus.Collector{m.operations, m.duration, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
