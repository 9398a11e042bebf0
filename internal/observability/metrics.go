// Package observability provides Prometheus metrics and structured logging.
package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Session metrics
	SessionsCreated prometheus.Counter
	SessionsClosed  prometheus.Counter
	SessionsActive  prometheus.Gauge

	// Generation metrics
	GenerationRuns      *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	CandidatesGenerated prometheus.Counter

	// Query metrics
	FilterQueries *prometheus.CounterVec
	FilterResults prometheus.Histogram

	// Reporting metrics
	ReportsGenerated *prometheus.CounterVec

	// Verification metrics
	VerificationRuns *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance registered on reg. Each registry may
// hold one instance per namespace.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "recruiting_lab"
	}
	f := promauto.With(reg)

	return &Metrics{
		// Session metrics
		SessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "created_total",
			Help:      "Total number of sessions created",
		}),
		SessionsClosed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "closed_total",
			Help:      "Total number of sessions closed",
		}),
		SessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Number of sessions currently held",
		}),

		// Generation metrics
		GenerationRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "runs_total",
			Help:      "Total number of generation passes by status",
		}, []string{"status"}),
		GenerationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Generation pass duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		CandidatesGenerated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "candidates_total",
			Help:      "Total number of candidate records generated",
		}),

		// Query metrics
		FilterQueries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "filters_total",
			Help:      "Total number of filter queries by whether any criterion was set",
		}, []string{"restricted"}),
		FilterResults: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "filter_result_size",
			Help:      "Number of candidates returned per filter query",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		// Reporting metrics
		ReportsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reporting",
			Name:      "reports_total",
			Help:      "Total number of reports rendered by format",
		}, []string{"format"}),

		// Verification metrics
		VerificationRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "runs_total",
			Help:      "Total number of replay verifications by result",
		}, []string{"result"}),
	}
}

// RecordGeneration records one generation pass.
func (m *Metrics) RecordGeneration(candidates int, elapsed time.Duration, err error) {
	if err != nil {
		m.GenerationRuns.WithLabelValues("error").Inc()
		return
	}
	m.GenerationRuns.WithLabelValues("ok").Inc()
	m.GenerationDuration.Observe(elapsed.Seconds())
	m.CandidatesGenerated.Add(float64(candidates))
}

// RecordFilter records one filter query and its result size.
func (m *Metrics) RecordFilter(restricted bool, results int) {
	m.FilterQueries.WithLabelValues(fmt.Sprint(restricted)).Inc()
	m.FilterResults.Observe(float64(results))
}

// RecordReport records a rendered report.
func (m *Metrics) RecordReport(format string) {
	m.ReportsGenerated.WithLabelValues(format).Inc()
}

// RecordVerification records one replay verification.
func (m *Metrics) RecordVerification(match bool) {
	result := "match"
	if !match {
		result = "diverged"
	}
	m.VerificationRuns.WithLabelValues(result).Inc()
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
