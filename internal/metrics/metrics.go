// Package metrics exposes prometheus collectors for raffle draws.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Draw outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Metrics groups the draw collectors. A nil *Metrics records nothing.
type Metrics struct {
	draws        *prometheus.CounterVec
	winners      prometheus.Counter
	drawDuration prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "raffle",
			Name:      "draws_total",
			Help:      "Raffle draws by outcome.",
		}, []string{"outcome"}),
		winners: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raffle",
			Name:      "winners_drawn_total",
			Help:      "Winners selected across all draws.",
		}),
		drawDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "raffle",
			Name:      "draw_duration_seconds",
			Help:      "Time spent executing a raffle.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.draws, m.winners, m.drawDuration)
	return m
}

// ObserveDraw records one finished draw.
func (m *Metrics) ObserveDraw(outcome string, winners int, took time.Duration) {
	if m == nil {
		return
	}
	m.draws.WithLabelValues(outcome).Inc()
	m.winners.Add(float64(winners))
	m.drawDuration.Observe(took.Seconds())
}
