package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	"github.com/spencertipping/garmin-influxdb2/pkg/util"
)

const (
	MeasurementHRV         = "hrv"
	MeasurementHeartRate   = "heart_rate"
	MeasurementSteps       = "steps"
	MeasurementStress      = "stress"
	MeasurementBodyBattery = "body_battery"
	MeasurementSleep       = "sleep"
	MeasurementUser        = "user"
)

// Mapper fetches one metric category for a day and emits its points.
type Mapper func(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error

// Category pairs a Mapper with the label printed once it completes.
type Category struct {
	Name  string
	Label string
	Map   Mapper
}

// Categories is the fixed per-day processing order.
func Categories() []Category {
	return []Category{
		{Name: "hrv", Label: "hrv", Map: MapHRV},
		{Name: "heart_rate", Label: "hr", Map: MapHeartRate},
		{Name: "steps", Label: "steps", Map: MapSteps},
		{Name: "stress", Label: "stress", Map: MapStress},
		{Name: "sleep", Label: "sleep", Map: MapSleep},
		{Name: "user", Label: "user", Map: MapUserSummary},
	}
}

// fieldMap copies source key into point field. Optional keys may be absent.
type fieldMap struct {
	field    string
	key      string
	optional bool
}

func addFields(p *models.Point, rec models.Record, fields []fieldMap) error {
	for _, f := range fields {
		if f.optional {
			p.AddField(f.field, rec.Opt(f.key))
			continue
		}
		v, err := rec.Value(f.key)
		if err != nil {
			return err
		}
		p.AddField(f.field, v)
	}
	return nil
}

func addTag(p *models.Point, rec models.Record, tag, key string) error {
	v, err := rec.String(key)
	if err != nil {
		return err
	}
	p.AddTag(tag, v)
	return nil
}

// gmtTime reads an ISO-8601 GMT string, appending suffix before parsing.
func gmtTime(rec models.Record, key, suffix string) (time.Time, error) {
	v, err := rec.Value(key)
	if err != nil {
		return time.Time{}, err
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s is not a timestamp string", models.ErrBadValue, key)
	}
	t, err := util.ParseGMT(s + suffix)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", models.ErrBadValue, key, err)
	}
	return t, nil
}

func msTime(rec models.Record, key string) (time.Time, error) {
	v, err := rec.Value(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := models.Millis(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}

// records converts a decoded array of objects.
func records(list []any, what string) ([]models.Record, error) {
	out := make([]models.Record, 0, len(list))
	for i, v := range list {
		rec, ok := models.AsRecord(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", models.ErrBadValue, what, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// tuple checks a decoded [ts, value, ...] sample has at least n elements.
func tuple(v any, n int, what string) ([]any, error) {
	t, ok := v.([]any)
	if !ok || len(t) < n {
		return nil, fmt.Errorf("%w: %s sample %v", models.ErrBadValue, what, v)
	}
	return t, nil
}

// msSeries maps [ms, value, ...] samples to one point each, taking the value
// at index idx.
func msSeries(list []any, measurement, field string, width, idx int) ([]*models.Point, error) {
	points := make([]*models.Point, 0, len(list))
	for _, v := range list {
		s, err := tuple(v, width, measurement)
		if err != nil {
			return nil, err
		}
		ts, err := models.Millis(s[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", measurement, err)
		}
		points = append(points, models.NewPoint(measurement).
			AddField(field, s[idx]).
			SetTime(ts, models.PrecisionMS))
	}
	return points, nil
}
