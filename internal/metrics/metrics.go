// Package metrics holds the Prometheus collectors of the converters.
//
// A nil *Metrics is valid and records nothing, so library code can take one
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catplus"

// Metrics holds the collectors for conversions and validation calls.
type Metrics struct {
	registry *prometheus.Registry

	// Conversion counters
	conversions      *prometheus.CounterVec // By input_type
	conversionErrors *prometheus.CounterVec // By input_type and stage

	// Conversion size and latency
	triples            *prometheus.HistogramVec // By input_type
	conversionDuration *prometheus.HistogramVec // By input_type

	// Validation calls
	validations        *prometheus.CounterVec // By outcome
	validationDuration prometheus.Histogram
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "conversions_total",
			Help:      "Total number of successful conversions",
		}, []string{"input_type"}),

		conversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "errors_total",
			Help:      "Total number of failed conversions",
		}, []string{"input_type", "stage"}), // stage: parse, build graph, materialize, serialize

		triples: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "graph_triples",
			Help:      "Number of triples per converted graph",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8), // 10 to ~160k
		}, []string{"input_type"}),

		conversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "convert",
			Name:      "duration_seconds",
			Help:      "Conversion duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"input_type"}),

		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "requests_total",
			Help:      "Total number of SHACL validation calls",
		}, []string{"outcome"}), // outcome: conforms, violates, error

		validationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "duration_seconds",
			Help:      "SHACL validation call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.conversions,
		m.conversionErrors,
		m.triples,
		m.conversionDuration,
		m.validations,
		m.validationDuration,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordConversion records a successful conversion.
func (m *Metrics) RecordConversion(inputType string, triples int, duration time.Duration) {
	if m == nil {
		return
	}

	m.conversions.WithLabelValues(inputType).Inc()
	m.triples.WithLabelValues(inputType).Observe(float64(triples))
	m.conversionDuration.WithLabelValues(inputType).Observe(duration.Seconds())
}

// RecordConversionError records a conversion that failed at stage.
func (m *Metrics) RecordConversionError(inputType, stage string) {
	if m == nil {
		return
	}

	m.conversionErrors.WithLabelValues(inputType, stage).Inc()
}

// Validation outcomes.
const (
	OutcomeConforms = "conforms"
	OutcomeViolates = "violates"
	OutcomeError    = "error"
)

// RecordValidation records one validation call.
func (m *Metrics) RecordValidation(outcome string, duration time.Duration) {
	if m == nil {
		return
	}

	m.validations.WithLabelValues(outcome).Inc()
	m.validationDuration.Observe(duration.Seconds())
}

// WriteToTextfile writes all collectors in the text exposition format, for
// the node exporter textfile collector. A nil receiver writes nothing.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
