package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// PointWriter routes points to the configured sink backend and records
// write metrics. It is the PointSink handed to every mapper.
type PointWriter struct {
	sink    drepo.PointSink
	metrics drepo.Metrics
	backend string
}

// NewPointWriter creates a new PointWriter instance.
func NewPointWriter(sink drepo.PointSink, metrics drepo.Metrics, backend string) *PointWriter {
	return &PointWriter{sink: sink, metrics: metrics, backend: backend}
}

// Write submits points synchronously as one batch.
func (w *PointWriter) Write(ctx context.Context, points ...*models.Point) error {
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p == nil {
			return fmt.Errorf("point is nil")
		}
		if p.Time.IsZero() {
			return fmt.Errorf("point %s has no timestamp", p.Measurement)
		}
	}

	start := time.Now()
	if err := w.sink.Write(ctx, points...); err != nil {
		w.metrics.RecordError("write")
		return fmt.Errorf("%s: %w", w.backend, err)
	}

	// Sinks drop points whose fields are all nil.
	counts := make(map[string]int)
	for _, p := range points {
		if len(p.NonNilFields()) > 0 {
			counts[p.Measurement]++
		}
	}
	for m, n := range counts {
		w.metrics.RecordPointsWritten(w.backend, m, n)
	}
	w.metrics.RecordLatency("write", time.Since(start).Seconds())
	return nil
}

// Close closes the underlying sink.
func (w *PointWriter) Close() error {
	if w.sink != nil {
		return w.sink.Close()
	}
	return nil
}
