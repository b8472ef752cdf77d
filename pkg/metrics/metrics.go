// Package metrics registers the Prometheus instruments the service
// exposes on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus instrument for the service. All
// record methods are nil-safe so instrumented code paths never need a
// metrics guard.
type Metrics struct {
	// Validation outcomes by data type and result.
	Validations *prometheus.CounterVec

	// Detection results by classified type, including "none".
	Detections *prometheus.CounterVec

	// Batch size distribution.
	BatchSize prometheus.Histogram

	// Request handling latency by operation.
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all instruments on the default registry.
// Call it once per process; registering twice panics by Prometheus
// design.
func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "validacao_validations_total",
			Help: "Total validations by data type and outcome",
		}, []string{"type", "outcome"}),

		Detections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "validacao_detections_total",
			Help: "Total type detections by classified type",
		}, []string{"type"}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "validacao_batch_size",
			Help:    "Number of items per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "validacao_request_duration_seconds",
			Help:    "Request handling duration by operation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// RecordValidation counts one validation outcome for a data type.
func (m *Metrics) RecordValidation(typ string, valid bool) {
	if m != nil {
		outcome := "invalid"
		if valid {
			outcome = "valid"
		}
		m.Validations.WithLabelValues(typ, outcome).Inc()
	}
}

// RecordDetection counts one detection result. Use "none" for inputs
// no validator accepted.
func (m *Metrics) RecordDetection(typ string) {
	if m != nil {
		m.Detections.WithLabelValues(typ).Inc()
	}
}

// RecordBatchSize records the item count of a batch request.
func (m *Metrics) RecordBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// ObserveRequestDuration records how long an operation took to serve.
func (m *Metrics) ObserveRequestDuration(operation string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}
