package repository

import (
	"context"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
)

// WellnessSource returns one category of per-day Garmin Connect data.
// Date is formatted as YYYY-MM-DD. HRV returns a nil record when the service
// has no HRV document for the day.
type WellnessSource interface {
	Login(ctx context.Context, email, password string) error
	HRV(ctx context.Context, date string) (models.Record, error)
	HeartRates(ctx context.Context, date string) (models.Record, error)
	Steps(ctx context.Context, date string) ([]models.Record, error)
	Stress(ctx context.Context, date string) (models.Record, error)
	Sleep(ctx context.Context, date string) (models.Record, error)
	UserSummary(ctx context.Context, date string) (models.Record, error)
}

// PointSink persists points. Write returns after every point was submitted.
type PointSink interface {
	Write(ctx context.Context, points ...*models.Point) error
	Close() error
}

type Metrics interface {
	RecordPointsWritten(backend, measurement string, n int)
	RecordCategory(category string, seconds float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordDay()
}
