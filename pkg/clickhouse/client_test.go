package clickhouse

import (
	"strings"
	"testing"
	"time"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(ClientConfig{
		Host: "ch", Port: 9000, Database: "garmin", User: "default", Password: "pw",
		DialTimeout: 5 * time.Second, ReadTimeout: 10 * time.Second,
	})
	want := "clickhouse://default:pw@ch:9000/garmin?dial_timeout=5s&read_timeout=10s"
	if dsn != want {
		t.Fatalf("got %q want %q", dsn, want)
	}
}

func TestBuildDSNHTTP(t *testing.T) {
	dsn := buildDSN(ClientConfig{Host: "ch", Port: 8123, Database: "garmin", UseHTTP: true})
	if !strings.HasPrefix(dsn, "http://") || strings.Contains(dsn, "?") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}

func TestPointsSchema(t *testing.T) {
	stmts := PointsSchema("garmin", "wellness_points")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if !strings.Contains(stmts[1], "garmin.wellness_points") || !strings.Contains(stmts[1], "ReplacingMergeTree") {
		t.Fatalf("unexpected table ddl %q", stmts[1])
	}
}

func TestNewClientRequiresHost(t *testing.T) {
	if _, err := NewClient(WithDatabase("garmin")); err == nil {
		t.Fatalf("expected error without host")
	}
}
