package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// MapHeartRate emits one point per heart-rate sample and the daily
// max/min/resting aggregate at midday.
func MapHeartRate(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	hr, err := src.HeartRates(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("heart rate: %w", err)
	}

	values, err := hr.List("heartRateValues")
	if err != nil {
		return fmt.Errorf("heart rate: %w", err)
	}
	if len(values) > 0 {
		samples, err := msSeries(values, MeasurementHeartRate, "bpm", 2, 1)
		if err != nil {
			return fmt.Errorf("heart rate: %w", err)
		}
		if err := sink.Write(ctx, samples...); err != nil {
			return fmt.Errorf("heart rate: write: %w", err)
		}
	}

	daily := models.NewPoint(MeasurementHeartRate)
	if err := addFields(daily, hr, []fieldMap{
		{field: "max", key: "maxHeartRate"},
		{field: "min", key: "minHeartRate"},
		{field: "resting", key: "restingHeartRate"},
	}); err != nil {
		return fmt.Errorf("heart rate: %w", err)
	}
	if err := sink.Write(ctx, daily.SetTime(day.Midday(), models.PrecisionS)); err != nil {
		return fmt.Errorf("heart rate: write: %w", err)
	}
	return nil
}
