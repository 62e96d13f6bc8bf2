package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for conflict resolution.
// A nil *Metrics is valid and records nothing, as is a Metrics created from
// a disabled configuration.
type Metrics struct {
	config MetricsConfig

	// Resolver metrics
	selectsTotal    *prometheus.CounterVec
	selectDuration  prometheus.Histogram
	effectiveTotal  prometheus.Counter
	deferredTotal   prometheus.Counter
	eliminatedTotal prometheus.Counter

	// Failure metrics
	contradictionsTotal prometheus.Counter

	// Chain metrics
	roundsTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return &Metrics{config: cfg}
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,
		selectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolver_selects_total",
			Help:      "Number of resolver select invocations by resolver name.",
		}, []string{"resolver"}),
		selectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolver_select_duration_seconds",
			Help:      "Duration of resolver select invocations.",
			Buckets:   prometheus.DefBuckets,
		}),
		effectiveTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_conflicts_effective_total",
			Help:      "Number of capabilities found in effective conflict.",
		}),
		deferredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_conflicts_deferred_total",
			Help:      "Number of effective conflicts left open for lack of a preference.",
		}),
		eliminatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_eliminated_total",
			Help:      "Number of candidates removed by capability narrowing.",
		}),
		contradictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_contradictions_total",
			Help:      "Number of configuration contradictions detected.",
		}),
		roundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_rounds_total",
			Help:      "Number of resolver chain rounds executed.",
		}),
	}

	registry.MustRegister(
		m.selectsTotal,
		m.selectDuration,
		m.effectiveTotal,
		m.deferredTotal,
		m.eliminatedTotal,
		m.contradictionsTotal,
		m.roundsTotal,
	)

	return m
}

// ObserveSelect records one resolver select invocation and its duration.
func (m *Metrics) ObserveSelect(resolver string, d time.Duration) {
	if m == nil || m.selectsTotal == nil {
		return
	}
	m.selectsTotal.WithLabelValues(resolver).Inc()
	m.selectDuration.Observe(d.Seconds())
}

// IncEffectiveConflict records a capability found in effective conflict.
func (m *Metrics) IncEffectiveConflict() {
	if m == nil || m.effectiveTotal == nil {
		return
	}
	m.effectiveTotal.Inc()
}

// IncDeferredConflict records an effective conflict left open because no
// preference is configured.
func (m *Metrics) IncDeferredConflict() {
	if m == nil || m.deferredTotal == nil {
		return
	}
	m.deferredTotal.Inc()
}

// AddEliminatedCandidates records candidates removed by narrowing.
func (m *Metrics) AddEliminatedCandidates(n int) {
	if m == nil || m.eliminatedTotal == nil || n <= 0 {
		return
	}
	m.eliminatedTotal.Add(float64(n))
}

// IncContradiction records a configuration contradiction.
func (m *Metrics) IncContradiction() {
	if m == nil || m.contradictionsTotal == nil {
		return
	}
	m.contradictionsTotal.Inc()
}

// IncChainRound records one resolver chain round.
func (m *Metrics) IncChainRound() {
	if m == nil || m.roundsTotal == nil {
		return
	}
	m.roundsTotal.Inc()
}

// Handler returns an HTTP handler exposing the metrics in Prometheus
// exposition format, or nil when metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer returns the underlying Prometheus gatherer, or nil when metrics
// are disabled.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return nil
	}
	return m.registry
}
