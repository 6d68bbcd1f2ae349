package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Verdict outcomes by verdict
	VerdictOutcome *prometheus.CounterVec

	// Checksum evaluations by method and result
	RuleEvaluations *prometheus.CounterVec

	// Cache lookups by outcome ("hit" or "miss")
	CacheLookups *prometheus.CounterVec

	// Overall validation latency
	ValidateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all validation module metrics registered.
func New() *Metrics {
	return &Metrics{
		VerdictOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sortcheck_validation_verdicts_total",
			Help: "Total validation verdicts by verdict",
		}, []string{"verdict"}),

		RuleEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sortcheck_rule_evaluations_total",
			Help: "Total checksum rule evaluations by method and result",
		}, []string{"method", "result"}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sortcheck_cache_lookups_total",
			Help: "Total verdict cache lookups by outcome",
		}, []string{"outcome"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sortcheck_validation_duration_seconds",
			Help:    "Duration of full validation including normalization and cache",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}
}

// IncrementVerdict records a validation verdict.
func (m *Metrics) IncrementVerdict(verdict string) {
	if m != nil {
		m.VerdictOutcome.WithLabelValues(verdict).Inc()
	}
}

// IncrementRuleEvaluation records one checksum evaluation.
func (m *Metrics) IncrementRuleEvaluation(method, result string) {
	if m != nil {
		m.RuleEvaluations.WithLabelValues(method, result).Inc()
	}
}

// IncrementCacheLookup records a cache hit or miss.
func (m *Metrics) IncrementCacheLookup(outcome string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(outcome).Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
