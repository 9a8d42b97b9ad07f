package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDraw(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveDraw(OutcomeCompleted, 15, 20*time.Millisecond)
	m.ObserveDraw(OutcomeFailed, 0, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.draws.WithLabelValues(OutcomeCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.draws.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.winners))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveDraw(OutcomeCompleted, 1, time.Second) })
}
