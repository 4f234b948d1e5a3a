// Package observability holds the Prometheus metrics and health probes of the
// tutor service.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "course_tutor"

// Metrics is safe to use through a nil pointer; every recorder is then a no-op.
type Metrics struct {
	RouterDecisions    *prometheus.CounterVec
	ExtractionOutcomes *prometheus.CounterVec
	LoginFailures      *prometheus.CounterVec
	IndexRefreshes     *prometheus.CounterVec
	GenerateDuration   *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RouterDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "router_decisions_total",
				Help:      "Questions routed, by decision",
			},
			[]string{"decision"},
		),
		ExtractionOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extraction_outcomes_total",
				Help:      "Course summary extractions, by outcome",
			},
			[]string{"outcome"},
		),
		LoginFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_failures_total",
				Help:      "Failed platform logins, by reason",
			},
			[]string{"reason"},
		),
		IndexRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "index_refreshes_total",
				Help:      "Course index refresh attempts, by status",
			},
			[]string{"status"},
		),
		GenerateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generate_duration_seconds",
				Help:      "Latency of answered questions, by router decision",
				Buckets:   []float64{0.05, 0.25, 1, 2.5, 5, 10, 20, 40},
			},
			[]string{"decision"},
		),
	}

	reg.MustRegister(m.RouterDecisions, m.ExtractionOutcomes, m.LoginFailures, m.IndexRefreshes, m.GenerateDuration)
	return m
}

// NewRegistry returns a private registry carrying the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) RecordDecision(decision string) {
	if m == nil {
		return
	}
	m.RouterDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) RecordExtraction(outcome string) {
	if m == nil {
		return
	}
	m.ExtractionOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordLoginFailure(reason string) {
	if m == nil {
		return
	}
	m.LoginFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordIndexRefresh(status string) {
	if m == nil {
		return
	}
	m.IndexRefreshes.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveGenerate(decision string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GenerateDuration.WithLabelValues(decision).Observe(elapsed.Seconds())
}
