package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// MapHRV emits the HRV summary, the optional baseline and every reading.
// Days without an HRV document emit nothing.
func MapHRV(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	hrv, err := src.HRV(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("hrv: %w", err)
	}
	if len(hrv) == 0 {
		return nil
	}
	points, err := hrvPoints(hrv)
	if err != nil {
		return fmt.Errorf("hrv: %w", err)
	}
	for _, batch := range points {
		if err := sink.Write(ctx, batch...); err != nil {
			return fmt.Errorf("hrv: write: %w", err)
		}
	}
	return nil
}

func hrvPoints(hrv models.Record) ([][]*models.Point, error) {
	summary, err := hrv.Record("hrvSummary")
	if err != nil {
		return nil, err
	}
	created, err := gmtTime(summary, "createTimeStamp", "")
	if err != nil {
		return nil, err
	}

	var out [][]*models.Point
	p := models.NewPoint(MeasurementHRV)
	if err := addFields(p, summary, []fieldMap{
		{field: "weekly_avg", key: "weeklyAvg"},
		{field: "night_avg", key: "lastNightAvg"},
	}); err != nil {
		return nil, err
	}
	out = append(out, []*models.Point{p.SetTime(created, models.PrecisionNS)})

	if baseline, ok := summary.OptRecord("baseline"); ok {
		b := models.NewPoint(MeasurementHRV)
		if err := addFields(b, baseline, []fieldMap{
			{field: "baseline_low_upper", key: "lowUpper"},
			{field: "baseline_low_balanced", key: "balancedLow"},
			{field: "baseline_upper_balanced", key: "balancedUpper"},
			{field: "marker_value", key: "markerValue"},
		}); err != nil {
			return nil, fmt.Errorf("baseline: %w", err)
		}
		out = append(out, []*models.Point{b.SetTime(created, models.PrecisionNS)})
	}

	list, err := hrv.List("hrvReadings")
	if err != nil {
		return nil, err
	}
	readings, err := records(list, "hrvReadings")
	if err != nil {
		return nil, err
	}
	batch := make([]*models.Point, 0, len(readings))
	for _, r := range readings {
		v, err := r.Value("hrvValue")
		if err != nil {
			return nil, err
		}
		ts, err := gmtTime(r, "readingTimeGMT", "")
		if err != nil {
			return nil, err
		}
		batch = append(batch, models.NewPoint(MeasurementHRV).
			AddField("hrv", v).
			SetTime(ts, models.PrecisionNS))
	}
	return append(out, batch), nil
}
