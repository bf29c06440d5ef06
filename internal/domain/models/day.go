package models

import "time"

const (
	SecondsPerDay = 86400
	middayOffset  = 43200
)

// DateLayout is the calendar date format used by the CLI and Garmin Connect.
const DateLayout = "2006-01-02"

// Day is one calendar day of an import run. Epoch is UTC midnight in seconds.
type Day struct {
	Date  string
	Epoch int64
}

// NewDay builds a Day from a UTC-midnight epoch.
func NewDay(epoch int64) Day {
	return Day{Date: time.Unix(epoch, 0).UTC().Format(DateLayout), Epoch: epoch}
}

// Midday is the anchor for daily aggregates without a reading timestamp.
func (d Day) Midday() time.Time {
	return UnixSeconds(d.Epoch + middayOffset)
}
