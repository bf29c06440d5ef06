package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// MapStress emits stress samples, body battery samples when present, and the
// daily max/avg stress at midday.
func MapStress(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	s, err := src.Stress(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("stress: %w", err)
	}

	values, err := s.List("stressValuesArray")
	if err != nil {
		return fmt.Errorf("stress: %w", err)
	}
	samples, err := msSeries(values, MeasurementStress, "value", 2, 1)
	if err != nil {
		return fmt.Errorf("stress: %w", err)
	}
	if err := sink.Write(ctx, samples...); err != nil {
		return fmt.Errorf("stress: write: %w", err)
	}

	// [ms, status, level, version]
	if s.Has("bodyBatteryValuesArray") {
		bb, err := s.List("bodyBatteryValuesArray")
		if err != nil {
			return fmt.Errorf("stress: %w", err)
		}
		points, err := msSeries(bb, MeasurementBodyBattery, "value", 4, 2)
		if err != nil {
			return fmt.Errorf("stress: %w", err)
		}
		if err := sink.Write(ctx, points...); err != nil {
			return fmt.Errorf("stress: write: %w", err)
		}
	}

	daily := models.NewPoint(MeasurementStress)
	if err := addFields(daily, s, []fieldMap{
		{field: "max", key: "maxStressLevel"},
		{field: "avg", key: "avgStressLevel"},
	}); err != nil {
		return fmt.Errorf("stress: %w", err)
	}
	if err := sink.Write(ctx, daily.SetTime(day.Midday(), models.PrecisionS)); err != nil {
		return fmt.Errorf("stress: write: %w", err)
	}
	return nil
}
