package usecase

import (
	"context"
	"fmt"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

var userSummaryFields = []fieldMap{
	{field: "total_kcal", key: "totalKilocalories"},
	{field: "active_kcal", key: "activeKilocalories"},
	{field: "bmr_kcal", key: "bmrKilocalories"},
	{field: "wellness_kcal", key: "wellnessKilocalories"},
	{field: "total_steps", key: "totalSteps"},
	{field: "total_meters", key: "totalDistanceMeters"},
	{field: "step_goal", key: "dailyStepGoal"},
	{field: "highly_active_seconds", key: "highlyActiveSeconds"},
	{field: "active_seconds", key: "activeSeconds"},
	{field: "sedenary_seconds", key: "sedentarySeconds"},
	{field: "sleeping_seconds", key: "sleepingSeconds"},
	{field: "moderate_intensity_minutes", key: "moderateIntensityMinutes"},
	{field: "vigorous_intensity_minutes", key: "vigorousIntensityMinutes"},
	{field: "floors_ascended_meters", key: "floorsAscendedInMeters"},
	{field: "floors_descended_meters", key: "floorsDescendedInMeters"},
	{field: "min_heart_rate", key: "minHeartRate"},
	{field: "max_heart_rate", key: "maxHeartRate"},
	{field: "resting_heart_rate", key: "restingHeartRate"},
	{field: "average_stress", key: "averageStressLevel"},
	{field: "max_stress", key: "maxStressLevel"},
	{field: "stress_seconds", key: "stressDuration"},
	{field: "rest_stress_seconds", key: "restStressDuration"},
	{field: "activity_stress_seconds", key: "activityStressDuration"},
	{field: "uncategorized_stress_seconds", key: "uncategorizedStressDuration"},
	{field: "low_stress_seconds", key: "lowStressDuration"},
	{field: "medium_stress_seconds", key: "mediumStressDuration"},
	{field: "high_stress_seconds", key: "highStressDuration"},
	{field: "measurable_awake_seconds", key: "measurableAwakeDuration"},
	{field: "measurable_sleep_seconds", key: "measurableAsleepDuration"},
	{field: "body_battery_charged", key: "bodyBatteryChargedValue"},
	{field: "body_battery_drained", key: "bodyBatteryDrainedValue"},
	{field: "body_battery_max", key: "bodyBatteryHighestValue"},
	{field: "body_battery_min", key: "bodyBatteryLowestValue"},
	{field: "resting_kcal_from_activity", key: "restingCaloriesFromActivity"},
}

// MapUserSummary emits the daily summary as one midday point.
func MapUserSummary(ctx context.Context, day models.Day, src drepo.WellnessSource, sink drepo.PointSink) error {
	u, err := src.UserSummary(ctx, day.Date)
	if err != nil {
		return fmt.Errorf("user summary: %w", err)
	}
	p := models.NewPoint(MeasurementUser)
	if err := addFields(p, u, userSummaryFields); err != nil {
		return fmt.Errorf("user summary: %w", err)
	}
	if err := sink.Write(ctx, p.SetTime(day.Midday(), models.PrecisionS)); err != nil {
		return fmt.Errorf("user summary: write: %w", err)
	}
	return nil
}
