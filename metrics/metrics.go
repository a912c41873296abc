// Package metrics exposes Prometheus instrumentation for cart operations.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Operation results
const (
	ResultOK       = "ok"
	ResultNoop     = "noop"
	ResultRejected = "rejected"
)

type CartMetrics struct {
	Operations      *prometheus.CounterVec
	PersistFailures prometheus.Counter
	DiscardedLoads  prometheus.Counter
}

// NewCartMetrics creates the cart counters and registers them on reg.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "operations_total",
		Help:      "Cart operations by name and result.",
	}, []string{"op", "result"})
	persist := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "persist_failures_total",
		Help:      "Cart writes to the local store that failed.",
	})
	discarded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cart",
		Name:      "discarded_loads_total",
		Help:      "Persisted carts discarded as malformed during initialization.",
	})

	reg.MustRegister(ops, persist, discarded)
	return &CartMetrics{Operations: ops, PersistFailures: persist, DiscardedLoads: discarded}
}

// Observe counts one operation. Safe on a nil receiver.
func (m *CartMetrics) Observe(op, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, result).Inc()
}

func (m *CartMetrics) PersistFailed() {
	if m == nil {
		return
	}
	m.PersistFailures.Inc()
}

func (m *CartMetrics) LoadDiscarded() {
	if m == nil {
		return
	}
	m.DiscardedLoads.Inc()
}
