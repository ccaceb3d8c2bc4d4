// Package metrics exposes Prometheus instrumentation for evaluations and the
// HTTP layer. The evaluator itself stays free of instrumentation; callers record
// results after the fact.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"instructrisk/internal/evaluate"
)

const metricsNamespace = "instructrisk"

const (
	evaluatorSubsystem = "evaluator"
	httpSubsystem      = "http"
)

// Sources label where an evaluation came from.
const (
	SourceAPI   = "api"
	SourceBatch = "batch"
)

// Metrics holds the collectors registered by New. Methods are safe on a nil
// *Metrics and record nothing.
type Metrics struct {
	// EvaluationsTotal counts evaluations by resulting level.
	// Labels: risk_level (low, medium, high), source (api, batch)
	EvaluationsTotal *prometheus.CounterVec

	// DetectorTriggersTotal counts how often each detector fired.
	// Labels: detector (rule id from rules.yaml)
	DetectorTriggersTotal *prometheus.CounterVec

	// RiskScore observes the accumulated score of each evaluation.
	RiskScore prometheus.Histogram

	// RequestDurationSeconds measures handler latency.
	// Labels: route, status
	RequestDurationSeconds *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer to
// serve them from promhttp.Handler().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EvaluationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: evaluatorSubsystem,
				Name:      "evaluations_total",
				Help:      "Total number of evaluations by risk level and source",
			},
			[]string{"risk_level", "source"},
		),
		DetectorTriggersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: evaluatorSubsystem,
				Name:      "detector_triggers_total",
				Help:      "Total number of times each detector triggered",
			},
			[]string{"detector"},
		),
		RiskScore: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: evaluatorSubsystem,
				Name:      "risk_score",
				Help:      "Accumulated risk score per evaluation",
				Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12, 16, 24},
			},
		),
		RequestDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds by route and status",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
			},
			[]string{"route", "status"},
		),
	}
}

// Observe records one evaluation. A nil receiver is a no-op so callers can run
// with metrics disabled.
func (m *Metrics) Observe(result evaluate.EvaluationResult, source string) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(string(result.RiskLevel), source).Inc()
	m.RiskScore.Observe(float64(result.RiskScore))
	for _, id := range result.Triggered {
		m.DetectorTriggersTotal.WithLabelValues(id).Inc()
	}
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDurationSeconds.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
