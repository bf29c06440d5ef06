package repository

import (
	"context"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	"github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// influxWriter is the part of pkg/influx.Client the sink needs.
type influxWriter interface {
	WritePoint(ctx context.Context, points ...*write.Point) error
	Close() error
}

// InfluxSink implements PointSink for InfluxDB 2.
type InfluxSink struct {
	w influxWriter
}

// NewInfluxSink creates an InfluxDB sink.
func NewInfluxSink(w influxWriter) repository.PointSink {
	return &InfluxSink{w: w}
}

func (s *InfluxSink) Write(ctx context.Context, points ...*models.Point) error {
	out := make([]*write.Point, 0, len(points))
	for _, p := range points {
		if ip := ToInfluxPoint(p); ip != nil {
			out = append(out, ip)
		}
	}
	return s.w.WritePoint(ctx, out...)
}

func (s *InfluxSink) Close() error {
	return s.w.Close()
}

// ToInfluxPoint converts a point for the Influx client. Line protocol has no
// null, so nil fields and empty tags are left out; a point without any field
// yields nil.
func ToInfluxPoint(p *models.Point) *write.Point {
	fields := p.NonNilFields()
	if len(fields) == 0 {
		return nil
	}
	ip := write.NewPointWithMeasurement(p.Measurement)
	for _, t := range p.Tags {
		if t.Value != "" {
			ip.AddTag(t.Key, t.Value)
		}
	}
	for _, f := range fields {
		ip.AddField(f.Key, f.Value)
	}
	ip.SetTime(p.Time)
	return ip
}
