package repository

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	lp "github.com/influxdata/line-protocol"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	"github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// LineProtocolSink writes points as nanosecond line protocol to w.
// Used as a dry run (backend "stdout").
type LineProtocolSink struct {
	mu  sync.Mutex
	enc *lp.Encoder
}

// NewLineProtocolSink creates a line protocol sink. Encoding matches the
// Influx write API.
func NewLineProtocolSink(w io.Writer) repository.PointSink {
	enc := lp.NewEncoder(w)
	enc.SetFieldTypeSupport(lp.UintSupport)
	enc.FailOnFieldErr(true)
	enc.SetPrecision(time.Nanosecond)
	return &LineProtocolSink{enc: enc}
}

func (s *LineProtocolSink) Write(_ context.Context, points ...*models.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range points {
		ip := ToInfluxPoint(p)
		if ip == nil {
			continue
		}
		if _, err := s.enc.Encode(ip); err != nil {
			return fmt.Errorf("encode %s: %w", p.Measurement, err)
		}
	}
	return nil
}

func (s *LineProtocolSink) Close() error { return nil }
