package usecase

const hrvDoc = `{
  "hrvSummary": {
    "weeklyAvg": 48,
    "lastNightAvg": 52,
    "createTimeStamp": "2024-01-01T08:19:14.236",
    "baseline": {"lowUpper": 40, "balancedLow": 43, "balancedUpper": 58, "markerValue": 0.4642}
  },
  "hrvReadings": [
    {"hrvValue": 55, "readingTimeGMT": "2024-01-01T01:02:03.0"},
    {"hrvValue": 49, "readingTimeGMT": "2024-01-01T01:07:03.0"}
  ]
}`

const hrvNoBaselineDoc = `{
  "hrvSummary": {"weeklyAvg": 48, "lastNightAvg": 52, "createTimeStamp": "2024-01-01T08:19:14.236", "baseline": null},
  "hrvReadings": []
}`

const heartRateDoc = `{"heartRateValues": [[1704110400000, 60]], "maxHeartRate": 80, "minHeartRate": 55, "restingHeartRate": 58}`

const stepsDoc = `[
  {"steps": 0, "primaryActivityLevel": "sedentary", "activityLevelConstant": true, "endGMT": "2024-01-01T00:15:00.0"},
  {"steps": 412, "primaryActivityLevel": "active", "activityLevelConstant": false, "endGMT": "2024-01-01T00:30:00.0"}
]`

const stressDoc = `{
  "stressValuesArray": [[1704067380000, 25], [1704067560000, -1]],
  "bodyBatteryValuesArray": [[1704067380000, "MEASURED", 71, 2.0]],
  "maxStressLevel": 88,
  "avgStressLevel": 31
}`

const stressNoBatteryDoc = `{"stressValuesArray": [], "maxStressLevel": 88, "avgStressLevel": 31}`

const sleepDoc = `{
  "dailySleepDTO": {
    "sleepWindowConfirmed": true,
    "sleepWindowConfirmationType": "enhanced_confirmed_final",
    "sleepTimeSeconds": 27000,
    "napTimeSeconds": 0,
    "avgSleepStress": null,
    "awakeCount": 2,
    "averageRespirationValue": 14.5,
    "minRespirationValue": 11.0,
    "maxRespirationValue": 19.0,
    "unmeasurableSleepSeconds": 0,
    "deepSleepSeconds": 5400,
    "lightSleepSeconds": 15000,
    "remSleepSeconds": 6600,
    "awakeSleepSeconds": 600,
    "sleepEndTimestampGMT": 1704092400000
  },
  "sleepMovement": [{"activityLevel": 0.81, "startGMT": "2024-01-01T00:00:00.0", "endGMT": "2024-01-01T00:01:00.0"}],
  "sleepScoreFeedback": "POSITIVE_DEEP",
  "sleepScoreInsight": "NONE",
  "sleepScores": {
    "overall": {"value": 82},
    "remPercentage": {"value": 24},
    "deepPercentage": {"value": 20},
    "lightPercentage": {"value": 56}
  },
  "sleepStress": [{"value": 12.0, "startGMT": 1704067380000}],
  "wellnessEpochRespirationDataDTOList": [{"respirationValue": 13.0, "startTimeGMT": 1704067380000}]
}`

const sleepMinimalDoc = `{
  "dailySleepDTO": {
    "sleepWindowConfirmed": false,
    "sleepWindowConfirmationType": "UNCONFIRMED",
    "sleepTimeSeconds": 0,
    "napTimeSeconds": 0,
    "unmeasurableSleepSeconds": 0,
    "deepSleepSeconds": 0,
    "lightSleepSeconds": 0,
    "remSleepSeconds": 0,
    "awakeSleepSeconds": 0,
    "sleepEndTimestampGMT": 1704092400000
  },
  "sleepMovement": []
}`

const userDoc = `{
  "totalKilocalories": 2400.0, "activeKilocalories": 600.0, "bmrKilocalories": 1800.0, "wellnessKilocalories": 2400.0,
  "totalSteps": 9000, "totalDistanceMeters": 7000, "dailyStepGoal": 8000,
  "highlyActiveSeconds": 1200, "activeSeconds": 3600, "sedentarySeconds": 40000, "sleepingSeconds": 27000,
  "moderateIntensityMinutes": 20, "vigorousIntensityMinutes": 10,
  "floorsAscendedInMeters": 30.5, "floorsDescendedInMeters": 28.1,
  "minHeartRate": 48, "maxHeartRate": 150, "restingHeartRate": 52,
  "averageStressLevel": 31, "maxStressLevel": 88,
  "stressDuration": 20000, "restStressDuration": 30000, "activityStressDuration": 5000, "uncategorizedStressDuration": 1000,
  "lowStressDuration": 10000, "mediumStressDuration": 8000, "highStressDuration": 2000,
  "measurableAwakeDuration": 50000, "measurableAsleepDuration": 27000,
  "bodyBatteryChargedValue": 60, "bodyBatteryDrainedValue": 55, "bodyBatteryHighestValue": 95, "bodyBatteryLowestValue": 20,
  "restingCaloriesFromActivity": null
}`
