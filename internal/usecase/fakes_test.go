package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
)

// fakeSource serves fixed JSON documents per category.
type fakeSource struct {
	t       *testing.T
	docs    map[string]string
	calls   []string
	failOn  string
	failErr error
}

func (f *fakeSource) Login(context.Context, string, string) error { return nil }

func (f *fakeSource) record(category, date string) (models.Record, error) {
	f.calls = append(f.calls, category+":"+date)
	if category == f.failOn {
		return nil, f.failErr
	}
	doc, ok := f.docs[category]
	if !ok {
		return nil, nil
	}
	var m map[string]any
	decodeJSON(f.t, doc, &m)
	return models.Record(m), nil
}

func (f *fakeSource) HRV(_ context.Context, date string) (models.Record, error) {
	return f.record("hrv", date)
}

func (f *fakeSource) HeartRates(_ context.Context, date string) (models.Record, error) {
	return f.record("heart_rate", date)
}

func (f *fakeSource) Steps(_ context.Context, date string) ([]models.Record, error) {
	f.calls = append(f.calls, "steps:"+date)
	doc, ok := f.docs["steps"]
	if !ok {
		return nil, nil
	}
	var list []map[string]any
	decodeJSON(f.t, doc, &list)
	out := make([]models.Record, 0, len(list))
	for _, m := range list {
		out = append(out, models.Record(m))
	}
	return out, nil
}

func (f *fakeSource) Stress(_ context.Context, date string) (models.Record, error) {
	return f.record("stress", date)
}

func (f *fakeSource) Sleep(_ context.Context, date string) (models.Record, error) {
	return f.record("sleep", date)
}

func (f *fakeSource) UserSummary(_ context.Context, date string) (models.Record, error) {
	return f.record("user", date)
}

func decodeJSON(t *testing.T, doc string, dest any) {
	t.Helper()
	d := json.NewDecoder(bytes.NewReader([]byte(doc)))
	d.UseNumber()
	if err := d.Decode(dest); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
}

// recordingSink keeps every batch it receives.
type recordingSink struct {
	batches [][]*models.Point
	err     error
}

func (s *recordingSink) Write(_ context.Context, points ...*models.Point) error {
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, points)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func (s *recordingSink) points() []*models.Point {
	var out []*models.Point
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

type nopMetrics struct {
	days   int
	errors []string
}

func (m *nopMetrics) RecordPointsWritten(string, string, int) {}
func (m *nopMetrics) RecordCategory(string, float64)          {}
func (m *nopMetrics) RecordError(kind string)                 { m.errors = append(m.errors, kind) }
func (m *nopMetrics) RecordLatency(string, float64)           {}
func (m *nopMetrics) RecordDay()                              { m.days++ }

// day2024 is 2024-01-01 at UTC midnight.
var day2024 = models.NewDay(1704067200)

const midday2024 = 1704067200 + 43200
