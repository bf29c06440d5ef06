package influx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

type fakeInflux struct {
	*httptest.Server
	pingStatus int

	mu    sync.Mutex
	body  string
	query string
	auth  string
}

func newFakeInflux(t *testing.T, pingStatus int) *fakeInflux {
	t.Helper()
	f := &fakeInflux{pingStatus: pingStatus}
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(f.pingStatus)
	})
	mux.HandleFunc("/api/v2/write", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.body = string(b)
		f.query = r.URL.RawQuery
		f.auth = r.Header.Get("Authorization")
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func TestNewClientRequiresServer(t *testing.T) {
	if _, err := NewClient(WithTarget("home", "garmin"), WithPing(false)); err == nil {
		t.Fatalf("expected error without server")
	}
}

func TestNewClientRequiresTarget(t *testing.T) {
	if _, err := NewClient(WithServer("http://localhost:8086"), WithPing(false)); err == nil {
		t.Fatalf("expected error without org and bucket")
	}
	if _, err := NewClient(WithServer("http://localhost:8086"), WithTarget("home", ""), WithPing(false)); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func TestNewClientPingFailure(t *testing.T) {
	f := newFakeInflux(t, http.StatusServiceUnavailable)
	_, err := NewClient(WithServer(f.URL), WithTarget("home", "garmin"), WithTimeout(2*time.Second))
	if err == nil {
		t.Fatalf("expected ping error")
	}
	if !strings.Contains(err.Error(), "influx ping") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewClientUnreachable(t *testing.T) {
	f := newFakeInflux(t, http.StatusNoContent)
	url := f.URL
	f.Close()
	if _, err := NewClient(WithServer(url), WithTarget("home", "garmin")); err == nil {
		t.Fatalf("expected error for closed server")
	}
}

func TestWritePoint(t *testing.T) {
	f := newFakeInflux(t, http.StatusNoContent)
	c, err := NewClient(
		WithServer(f.URL),
		WithToken("secret"),
		WithTarget("home", "garmin"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	p := write.NewPointWithMeasurement("heart_rate").
		AddField("bpm", int64(60)).
		SetTime(time.UnixMilli(1704110400000))
	if err := c.WritePoint(context.Background(), p); err != nil {
		t.Fatalf("write: %v", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if got := strings.TrimSpace(f.body); got != "heart_rate bpm=60i 1704110400000000000" {
		t.Fatalf("unexpected body %q", got)
	}
	if !strings.Contains(f.query, "org=home") || !strings.Contains(f.query, "bucket=garmin") {
		t.Fatalf("unexpected query %q", f.query)
	}
	if f.auth != "Token secret" {
		t.Fatalf("unexpected authorization %q", f.auth)
	}
}

func TestWritePointEmpty(t *testing.T) {
	f := newFakeInflux(t, http.StatusNoContent)
	c, err := NewClient(WithServer(f.URL), WithTarget("home", "garmin"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer c.Close()

	if err := c.WritePoint(context.Background()); err != nil {
		t.Fatalf("empty write: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.body != "" {
		t.Fatalf("empty write reached the server: %q", f.body)
	}
}
