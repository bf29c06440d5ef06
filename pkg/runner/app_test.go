package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	"github.com/spencertipping/garmin-influxdb2/pkg/config"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
)

type stubSource struct {
	loginErr error
	email    string
	password string
}

func (s *stubSource) Login(_ context.Context, email, password string) error {
	s.email, s.password = email, password
	return s.loginErr
}
func (s *stubSource) HRV(context.Context, string) (models.Record, error)        { return nil, nil }
func (s *stubSource) HeartRates(context.Context, string) (models.Record, error) { return nil, nil }
func (s *stubSource) Steps(context.Context, string) ([]models.Record, error)    { return nil, nil }
func (s *stubSource) Stress(context.Context, string) (models.Record, error)     { return nil, nil }
func (s *stubSource) Sleep(context.Context, string) (models.Record, error)      { return nil, nil }
func (s *stubSource) UserSummary(context.Context, string) (models.Record, error) {
	return nil, nil
}

type stubImporter struct {
	called     bool
	start, end string
	err        error
}

func (s *stubImporter) Run(_ context.Context, start, end string) (int, error) {
	s.called, s.start, s.end = true, start, end
	return 1, s.err
}

type stubSink struct{ closed int }

func (s *stubSink) Write(context.Context, ...*models.Point) error { return nil }
func (s *stubSink) Close() error {
	s.closed++
	return nil
}

type stubTextfile struct{ path string }

func (s *stubTextfile) WriteTextfile(path string) error {
	s.path = path
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New()
	require.NoError(t, err)
	cfg.Garmin.Email = "runner@example.com"
	cfg.Garmin.Password = "hunter2"
	cfg.Range.Start = "2024-01-01"
	cfg.Range.End = "2024-01-02"
	cfg.Metrics.Textfile = "/tmp/garmin.prom"
	return cfg
}

func TestRunImportsRangeAndClosesSink(t *testing.T) {
	src, im, sink, tf := &stubSource{}, &stubImporter{}, &stubSink{}, &stubTextfile{}
	app := New(testConfig(t), src, im, sink, tf, applogger.Nop())

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "hunter2", src.password)
	assert.True(t, im.called)
	assert.Equal(t, "2024-01-01", im.start)
	assert.Equal(t, "2024-01-02", im.end)
	assert.Equal(t, 1, sink.closed)
	assert.Equal(t, "/tmp/garmin.prom", tf.path)
}

func TestRunLoginFailureSkipsImport(t *testing.T) {
	denied := errors.New("denied")
	src, im, sink := &stubSource{loginErr: denied}, &stubImporter{}, &stubSink{}
	app := New(testConfig(t), src, im, sink, nil, applogger.Nop())

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, denied)
	assert.False(t, im.called)
	assert.Equal(t, 1, sink.closed)
}

func TestRunImportErrorStillClosesSink(t *testing.T) {
	boom := errors.New("write failed")
	sink := &stubSink{}
	app := New(testConfig(t), &stubSource{}, &stubImporter{err: boom}, sink, nil, applogger.Nop())

	assert.ErrorIs(t, app.Run(context.Background()), boom)
	assert.Equal(t, 1, sink.closed)
}
