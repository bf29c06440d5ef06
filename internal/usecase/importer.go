package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
	"github.com/spencertipping/garmin-influxdb2/pkg/util"
)

// Importer drives the per-day transform over an inclusive date range.
type Importer struct {
	src        drepo.WellnessSource
	sink       drepo.PointSink
	metrics    drepo.Metrics
	log        *applogger.Logger
	progress   io.Writer
	categories []Category
}

// NewImporter creates an Importer writing progress lines to progress.
func NewImporter(src drepo.WellnessSource, sink drepo.PointSink, metrics drepo.Metrics, log *applogger.Logger, progress io.Writer) *Importer {
	return &Importer{
		src:        src,
		sink:       sink,
		metrics:    metrics,
		log:        log,
		progress:   progress,
		categories: Categories(),
	}
}

// Run imports every day from start to end inclusive (YYYY-MM-DD, UTC) and
// returns the number of days processed. The first error aborts the run.
func (im *Importer) Run(ctx context.Context, start, end string) (int, error) {
	se, err := util.ParseDate(start)
	if err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}
	ee, err := util.ParseDate(end)
	if err != nil {
		return 0, fmt.Errorf("end: %w", err)
	}

	days := 0
	for _, e := range util.DayEpochs(se, ee) {
		if err := ctx.Err(); err != nil {
			return days, err
		}
		if err := im.Day(ctx, models.NewDay(e)); err != nil {
			return days, err
		}
		days++
	}
	return days, nil
}

// Day runs every category for one day in fixed order.
func (im *Importer) Day(ctx context.Context, day models.Day) error {
	fmt.Fprintf(im.progress, "uploading %s...", day.Date)
	for _, c := range im.categories {
		start := time.Now()
		if err := c.Map(ctx, day, im.src, im.sink); err != nil {
			fmt.Fprintln(im.progress)
			im.metrics.RecordError(c.Name)
			im.log.Error("category failed",
				applogger.String("date", day.Date),
				applogger.String("category", c.Name),
				applogger.Error(err))
			return fmt.Errorf("%s: %w", day.Date, err)
		}
		im.metrics.RecordCategory(c.Name, time.Since(start).Seconds())
		fmt.Fprintf(im.progress, " [%s]", c.Label)
	}
	fmt.Fprintln(im.progress)
	im.metrics.RecordDay()
	im.log.Debug("day uploaded", applogger.String("date", day.Date))
	return nil
}
