package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 86400
)

// gmtLayouts are the zone-less timestamp shapes Garmin Connect returns.
var gmtLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTime tries RFC3339, RFC3339Nano, Garmin GMT strings and unix seconds.
// Zone-less strings are read as UTC. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range gmtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0).UTC(), true
	}
	return time.Time{}, false
}

// ParseGMT parses a Garmin "...GMT" timestamp string.
func ParseGMT(s string) (time.Time, error) {
	t, ok := ParseTime(s)
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
	}
	return t, nil
}

// ParseDate parses YYYY-MM-DD as UTC midnight and returns its epoch seconds.
func ParseDate(s string) (int64, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Unix(), nil
}

// DayEpochs returns every UTC-midnight epoch from start to end inclusive,
// stepping 86400 seconds. Empty when start is after end.
func DayEpochs(start, end int64) []int64 {
	var out []int64
	for e := start; e <= end; e += secondsPerDay {
		out = append(out, e)
	}
	return out
}
