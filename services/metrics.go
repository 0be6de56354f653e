package services

import (
	"facttech_landing_go/services/leads"

	"github.com/prometheus/client_golang/prometheus"
)

// LeadMetrics tracks demo request attempts. A nil *LeadMetrics is a no-op.
type LeadMetrics struct {
	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	activeFlows prometheus.GaugeFunc
}

// NewLeadMetrics registers the lead collectors on reg. activeWorkflows reports
// the live registry size and may be nil.
func NewLeadMetrics(reg prometheus.Registerer, activeWorkflows func() int) *LeadMetrics {
	m := &LeadMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facttech",
			Subsystem: "demo",
			Name:      "submissions_total",
			Help:      "Resolved demo request attempts by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "facttech",
			Subsystem: "demo",
			Name:      "intake_duration_seconds",
			Help:      "Time spent waiting on the intake endpoint.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.submissions, m.latency)

	if activeWorkflows != nil {
		m.activeFlows = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "facttech",
			Subsystem: "demo",
			Name:      "active_workflows",
			Help:      "Visitor workflows held in memory.",
		}, func() float64 { return float64(activeWorkflows()) })
		reg.MustRegister(m.activeFlows)
	}
	return m
}

// ObserveOutcome records one resolved attempt
func (m *LeadMetrics) ObserveOutcome(outcome leads.Outcome) {
	if m == nil || outcome.Kind == leads.OutcomePending {
		return
	}
	kind := string(outcome.Kind)
	m.submissions.WithLabelValues(kind).Inc()
	m.latency.WithLabelValues(kind).Observe(outcome.Duration.Seconds())
}
