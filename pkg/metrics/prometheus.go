package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	registry      *prometheus.Registry
	pointsWritten *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	daysTotal     prometheus.Counter
	category      *prometheus.HistogramVec
	latency       *prometheus.HistogramVec
}

// New creates a recorder on its own registry so a run can be exported as a
// node-exporter textfile.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pointsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "garmin_import_points_written_total",
				Help: "Total number of points written to the sink",
			},
			[]string{"backend", "measurement"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "garmin_import_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		daysTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "garmin_import_days_total",
				Help: "Days imported completely",
			},
		),
		category: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "garmin_import_category_duration_seconds",
				Help:    "Fetch and write duration per metric category",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"category"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "garmin_import_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	r.registry.MustRegister(r.pointsWritten, r.errorsTotal, r.daysTotal, r.category, r.latency)
	return r
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// RecordPointsWritten counts points accepted by a backend.
func (r *Recorder) RecordPointsWritten(backend, measurement string, n int) {
	r.pointsWritten.WithLabelValues(backend, measurement).Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCategory records how long one category took for one day.
func (r *Recorder) RecordCategory(category string, seconds float64) {
	r.category.WithLabelValues(category).Observe(seconds)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordDay counts a fully imported day.
func (r *Recorder) RecordDay() {
	r.daysTotal.Inc()
}

// WriteTextfile writes the current metrics in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
