package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

var sleepFields = []fieldMap{
	{field: "sleep_seconds", key: "sleepTimeSeconds"},
	{field: "nap_seconds", key: "napTimeSeconds"},
	{field: "mean_sleep_stress", key: "avgSleepStress", optional: true},
	{field: "awake_count", key: "awakeCount", optional: true},
	{field: "mean_respiration", key: "averageRespirationValue", optional: true},
	{field: "min_respiration", key: "minRespirationValue", optional: true},
	{field: "max_respiration", key: "maxRespirationValue", optional: true},
	{field: "restless_moments", key: "restlessMomentsCount", optional: true},
	{field: "unmeasurable_seconds", key: "unmeasurableSleepSeconds"},
	{field: "deep_seconds", key: "deepSleepSeconds"},
	{field: "light_seconds", key: "lightSleepSeconds"},
	{field: "rem_seconds", key: "remSleepSeconds"},
	{field: "awake_seconds", key: "awakeSleepSeconds"},
}

// MapSleep emits movement samples, the optional score, stress and
// respiration series, and the nightly summary stamped at sleep end.
func MapSleep(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	s, err := src.Sleep(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	batches, err := sleepPoints(s)
	if err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	for _, batch := range batches {
		if err := sink.Write(ctx, batch...); err != nil {
			return fmt.Errorf("sleep: write: %w", err)
		}
	}
	return nil
}

func sleepPoints(s models.Record) ([][]*models.Point, error) {
	dto, err := s.Record("dailySleepDTO")
	if err != nil {
		return nil, err
	}

	var out [][]*models.Point

	list, err := s.List("sleepMovement")
	if err != nil {
		return nil, err
	}
	movement, err := records(list, "sleepMovement")
	if err != nil {
		return nil, err
	}
	batch := make([]*models.Point, 0, len(movement))
	for _, m := range movement {
		p := models.NewPoint(MeasurementSleep)
		if err := addFields(p, m, []fieldMap{{field: "activity_level", key: "activityLevel"}}); err != nil {
			return nil, err
		}
		ts, err := gmtTime(m, "endGMT", "Z")
		if err != nil {
			return nil, err
		}
		batch = append(batch, p.SetTime(ts, models.PrecisionNS))
	}
	out = append(out, batch)

	if scores, ok := s.OptRecord("sleepScores"); ok {
		p, err := sleepScorePoint(s, scores, dto)
		if err != nil {
			return nil, fmt.Errorf("sleepScores: %w", err)
		}
		out = append(out, []*models.Point{p})
	}

	if s.Has("sleepStress") {
		batch, err := sleepSeries(s, "sleepStress", "stress", "value", "startGMT")
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}

	if s.Has("wellnessEpochRespirationDataDTOList") {
		batch, err := sleepSeries(s, "wellnessEpochRespirationDataDTOList", "respiration", "respirationValue", "startTimeGMT")
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}

	p := models.NewPoint(MeasurementSleep)
	if err := addTag(p, dto, "sleep_window_confirmed", "sleepWindowConfirmed"); err != nil {
		return nil, fmt.Errorf("dailySleepDTO: %w", err)
	}
	if err := addTag(p, dto, "sleep_window_confirmation_type", "sleepWindowConfirmationType"); err != nil {
		return nil, fmt.Errorf("dailySleepDTO: %w", err)
	}
	if err := addFields(p, dto, sleepFields); err != nil {
		return nil, fmt.Errorf("dailySleepDTO: %w", err)
	}
	end, err := msTime(dto, "sleepEndTimestampGMT")
	if err != nil {
		return nil, fmt.Errorf("dailySleepDTO: %w", err)
	}
	return append(out, []*models.Point{p.SetTime(end, models.PrecisionMS)}), nil
}

func sleepScorePoint(s, scores, dto models.Record) (*models.Point, error) {
	p := models.NewPoint(MeasurementSleep)
	if err := addTag(p, s, "sleep_score_feedback", "sleepScoreFeedback"); err != nil {
		return nil, err
	}
	if err := addTag(p, s, "sleep_score_insight", "sleepScoreInsight"); err != nil {
		return nil, err
	}
	for _, f := range []fieldMap{
		{field: "sleep_score", key: "overall"},
		{field: "rem_percentage", key: "remPercentage"},
		{field: "deep_percentage", key: "deepPercentage"},
		{field: "light_percentage", key: "lightPercentage"},
	} {
		v, err := scores.Path(f.key, "value")
		if err != nil {
			return nil, err
		}
		p.AddField(f.field, v)
	}
	end, err := msTime(dto, "sleepEndTimestampGMT")
	if err != nil {
		return nil, err
	}
	return p.SetTime(end, models.PrecisionMS), nil
}

// sleepSeries maps a list of {tsKey: ms, valueKey: v} objects.
func sleepSeries(s models.Record, listKey, field, valueKey, tsKey string) ([]*models.Point, error) {
	list, err := s.List(listKey)
	if err != nil {
		return nil, err
	}
	recs, err := records(list, listKey)
	if err != nil {
		return nil, err
	}
	points := make([]*models.Point, 0, len(recs))
	for _, r := range recs {
		v, err := r.Value(valueKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", listKey, err)
		}
		ts, err := msTime(r, tsKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", listKey, err)
		}
		points = append(points, models.NewPoint(MeasurementSleep).
			AddField(field, v).
			SetTime(ts, models.PrecisionMS))
	}
	return points, nil
}
