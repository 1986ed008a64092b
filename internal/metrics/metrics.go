// Package metrics provides Prometheus metrics for langid runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all classification metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Records
	RecordsTotal     *prometheus.CounterVec
	MalformedTotal   prometheus.Counter
	ConfidenceScores *prometheus.HistogramVec
	RecordTokens     prometheus.Histogram
	RulesTotal       *prometheus.CounterVec

	// Batches
	BatchesTotal   *prometheus.CounterVec
	BatchDuration  prometheus.Histogram
	ChunksInFlight prometheus.Gauge
}

// New creates a Metrics instance registered on its own registry.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "langid"
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,

		RecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_total",
				Help:      "Total number of classified records",
			},
			[]string{"language", "script"},
		),
		MalformedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "malformed_lines_total",
				Help:      "Total number of input lines skipped as malformed",
			},
		),
		ConfidenceScores: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "confidence",
				Help:      "Confidence of classified records",
				Buckets:   []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, 1},
			},
			[]string{"language"},
		),
		RecordTokens: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "record_tokens",
				Help:      "Number of counted tokens per record",
				Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100, 250},
			},
		),
		RulesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rules_total",
				Help:      "Total number of decisions per classification rule",
			},
			[]string{"rule"},
		),

		BatchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of batch runs",
			},
			[]string{"status"},
		),
		BatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_duration_seconds",
				Help:      "Batch run duration in seconds",
				Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
			},
		),
		ChunksInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "chunks_in_flight",
				Help:      "Current number of chunks being classified",
			},
		),
	}

	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordClassification records one classified record.
func (m *Metrics) RecordClassification(language, script, rule string, confidence float64, tokens int) {
	m.RecordsTotal.WithLabelValues(language, script).Inc()
	m.ConfidenceScores.WithLabelValues(language).Observe(confidence)
	m.RecordTokens.Observe(float64(tokens))
	m.RulesTotal.WithLabelValues(rule).Inc()
}

// RecordMalformed records a skipped input line.
func (m *Metrics) RecordMalformed() {
	m.MalformedTotal.Inc()
}

// RecordBatch records a finished batch run.
func (m *Metrics) RecordBatch(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	m.BatchesTotal.WithLabelValues(status).Inc()
	m.BatchDuration.Observe(duration.Seconds())
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
