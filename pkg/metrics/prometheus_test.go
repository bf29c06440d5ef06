package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsPoints(t *testing.T) {
	r := New()
	r.RecordPointsWritten("influx", "hrv", 3)
	r.RecordPointsWritten("influx", "hrv", 2)
	r.RecordDay()

	if got := testutil.ToFloat64(r.pointsWritten.WithLabelValues("influx", "hrv")); got != 5 {
		t.Fatalf("expected 5 points, got %v", got)
	}
	if got := testutil.ToFloat64(r.daysTotal); got != 1 {
		t.Fatalf("expected 1 day, got %v", got)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.RecordError("write")
	if got := testutil.ToFloat64(b.errorsTotal.WithLabelValues("write")); got != 0 {
		t.Fatalf("expected separate registries, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.RecordPointsWritten("stdout", "steps", 96)
	path := filepath.Join(t.TempDir(), "garmin.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), `garmin_import_points_written_total{backend="stdout",measurement="steps"} 96`) {
		t.Fatalf("unexpected textfile:\n%s", b)
	}
}
