package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCartMetrics(reg)

	m.Observe("add", ResultOK)
	m.Observe("add", ResultOK)
	m.Observe("add", ResultRejected)
	m.PersistFailed()
	m.LoadDiscarded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("add", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("add", ResultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscardedLoads))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCartMetrics_NilSafe(t *testing.T) {
	var m *CartMetrics
	assert.NotPanics(t, func() {
		m.Observe("add", ResultOK)
		m.PersistFailed()
		m.LoadDiscarded()
	})
}

func TestNewCartMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCartMetrics(reg)
	assert.Panics(t, func() { NewCartMetrics(reg) })
}
