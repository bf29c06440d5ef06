package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseGMTWithoutZone(t *testing.T) {
	got, err := ParseGMT("2024-01-01T03:14:58.0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, 1, 1, 3, 14, 58, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseGMTWithAppendedZone(t *testing.T) {
	got, err := ParseGMT("2024-01-01T00:15:00.0Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Unix() != 1704068100 {
		t.Fatalf("unexpected unix %d", got.Unix())
	}
}

func TestParseGMTInvalid(t *testing.T) {
	if _, err := ParseGMT("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseDateIsUTCMidnight(t *testing.T) {
	e, err := ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e != 1704067200 {
		t.Fatalf("unexpected epoch %d", e)
	}
	if _, err := ParseDate("01/01/2024"); err == nil {
		t.Fatalf("expected error for bad layout")
	}
}

func TestDayEpochs(t *testing.T) {
	start, _ := ParseDate("2024-03-09")
	end, _ := ParseDate("2024-03-11")
	if got := DayEpochs(start, end); len(got) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got))
	}
	if got := DayEpochs(start, start); len(got) != 1 {
		t.Fatalf("expected 1 day, got %d", len(got))
	}
	if got := DayEpochs(end, start); len(got) != 0 {
		t.Fatalf("expected no days, got %d", len(got))
	}
}
