//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	"github.com/spencertipping/garmin-influxdb2/internal/service/garmin"
	"github.com/spencertipping/garmin-influxdb2/pkg/config"
	"github.com/spencertipping/garmin-influxdb2/pkg/metrics"
	"github.com/spencertipping/garmin-influxdb2/pkg/runner"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*runner.App, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		wire.Bind(new(drepo.Metrics), new(*metrics.Recorder)),

		// Infrastructure clients
		ProvideCache,
		ProvideGarminClient,
		wire.Bind(new(drepo.WellnessSource), new(*garmin.Client)),
		ProvideSink,

		// Use cases
		ProvidePointWriter,
		ProvideImporter,

		ProvideApp,
	)
	return nil, nil, nil
}
