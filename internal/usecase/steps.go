package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// MapSteps emits one point per step interval, tagged with its activity level.
func MapSteps(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	steps, err := src.Steps(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("steps: %w", err)
	}

	points := make([]*models.Point, 0, len(steps))
	for _, s := range steps {
		p := models.NewPoint(MeasurementSteps)
		if err := addFields(p, s, []fieldMap{{field: "count", key: "steps"}}); err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		if err := addTag(p, s, "activity_level", "primaryActivityLevel"); err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		if err := addTag(p, s, "activity_level_constant", "activityLevelConstant"); err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		ts, err := gmtTime(s, "endGMT", "Z")
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		points = append(points, p.SetTime(ts, models.PrecisionNS))
	}

	if err := sink.Write(ctx, points...); err != nil {
		return fmt.Errorf("steps: write: %w", err)
	}
	return nil
}
