package runner

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	"github.com/spencertipping/garmin-influxdb2/internal/usecase"
	"github.com/spencertipping/garmin-influxdb2/pkg/config"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
)

// Textfile exports collected metrics at the end of a run.
type Textfile interface {
	WriteTextfile(path string) error
}

// Importer runs the per-day transform over a date range.
type Importer interface {
	Run(ctx context.Context, start, end string) (int, error)
}

// App encapsulates one import run: login, the day loop and teardown.
type App struct {
	cfg      *config.Config
	source   drepo.WellnessSource
	importer Importer
	writer   drepo.PointSink
	metrics  Textfile
	log      *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	source drepo.WellnessSource,
	importer Importer,
	writer drepo.PointSink,
	metrics Textfile,
	log *applogger.Logger,
) *App {
	return &App{
		cfg:      cfg,
		source:   source,
		importer: importer,
		writer:   writer,
		metrics:  metrics,
		log:      log,
	}
}

var _ Importer = (*usecase.Importer)(nil)

// Run logs in and imports the configured range. SIGINT and SIGTERM cancel
// the run between requests. The sink is closed on every exit path.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := a.log.With(
		applogger.String("run_id", uuid.NewString()),
		applogger.String("backend", a.cfg.Backend.Type),
	)

	defer func() {
		if cerr := a.writer.Close(); cerr != nil {
			l.Warn("sink close error", applogger.Error(cerr))
			if err == nil {
				err = fmt.Errorf("close sink: %w", cerr)
			}
		}
		a.exportMetrics(l)
	}()

	if err := a.source.Login(ctx, a.cfg.Garmin.Email, a.cfg.Garmin.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	l.Info("logged in", applogger.String("email", a.cfg.Garmin.Email))

	started := time.Now()
	days, err := a.importer.Run(ctx, a.cfg.Range.Start, a.cfg.Range.End)
	if err != nil {
		l.Error("import aborted", applogger.Int("days", days), applogger.Error(err))
		return err
	}
	l.Info("import complete",
		applogger.String("start", a.cfg.Range.Start),
		applogger.String("end", a.cfg.Range.End),
		applogger.Int("days", days),
		applogger.Duration("elapsed", time.Since(started)))
	return nil
}

func (a *App) exportMetrics(l *applogger.Logger) {
	path := a.cfg.Metrics.Textfile
	if path == "" || a.metrics == nil {
		return
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		l.Warn("metrics textfile error", applogger.String("path", path), applogger.Error(err))
	}
}
