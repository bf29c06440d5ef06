package di

import (
	"context"
	"fmt"
	"os"
	"time"

	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	internalrepo "github.com/spencertipping/garmin-influxdb2/internal/repository"
	"github.com/spencertipping/garmin-influxdb2/internal/service/cache"
	"github.com/spencertipping/garmin-influxdb2/internal/service/garmin"
	"github.com/spencertipping/garmin-influxdb2/internal/usecase"
	pkgch "github.com/spencertipping/garmin-influxdb2/pkg/clickhouse"
	"github.com/spencertipping/garmin-influxdb2/pkg/config"
	"github.com/spencertipping/garmin-influxdb2/pkg/influx"
	pkgkafka "github.com/spencertipping/garmin-influxdb2/pkg/kafka"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
	"github.com/spencertipping/garmin-influxdb2/pkg/metrics"
	"github.com/spencertipping/garmin-influxdb2/pkg/runner"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache creates the optional raw-response cache. A nil cache
// disables caching.
func ProvideCache(cfg *config.Config) (cache.BytesCache, func(), error) {
	switch cfg.Cache.Type {
	case config.CacheMemory:
		return cache.NewTTLCache(), func() {}, nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(context.Background(), cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, func() { _ = rc.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

// ProvideGarminClient creates the Garmin Connect client.
func ProvideGarminClient(cfg *config.Config, c cache.BytesCache, l *applogger.Logger) *garmin.Client {
	opts := []garmin.Option{garmin.WithLogger(l)}
	if c != nil {
		opts = append(opts, garmin.WithCache(c, cfg.Cache.TTL))
	}
	return garmin.New(cfg.Garmin.BaseURL, cfg.Garmin.SSOURL, cfg.Garmin.UserAgent, cfg.Garmin.Timeout, opts...)
}

// ProvideSink opens the configured backend.
func ProvideSink(cfg *config.Config) (drepo.PointSink, func(), error) {
	switch cfg.Backend.Type {
	case config.BackendInflux:
		client, err := influx.NewClient(
			influx.WithServer(cfg.Influx.Server),
			influx.WithToken(cfg.Influx.Token),
			influx.WithTarget(cfg.Influx.Org, cfg.Influx.Bucket),
			influx.WithTimeout(cfg.Influx.Timeout),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("influx client: %w", err)
		}
		return internalrepo.NewInfluxSink(client), func() {}, nil

	case config.BackendClickHouse:
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("clickhouse client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.InitSchema(ctx, pkgch.PointsSchema(cfg.ClickHouse.Database, cfg.ClickHouse.Table)); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("clickhouse schema: %w", err)
		}
		table := cfg.ClickHouse.Database + "." + cfg.ClickHouse.Table
		return internalrepo.NewClickHouseSink(client.DB(), table), func() { _ = client.Close() }, nil

	case config.BackendKafka:
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
			pkgkafka.WithBatchSize(cfg.Kafka.BatchSize),
			pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaSink(producer, cfg.Kafka.Topic), func() {}, nil

	case config.BackendStdout:
		return internalrepo.NewLineProtocolSink(os.Stdout), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend.Type)
	}
}

// ProvidePointWriter wraps the sink with metrics.
func ProvidePointWriter(sink drepo.PointSink, m drepo.Metrics, cfg *config.Config) *usecase.PointWriter {
	return usecase.NewPointWriter(sink, m, cfg.Backend.Type)
}

// ProvideImporter creates the date-range driver. Progress goes to stdout.
func ProvideImporter(src drepo.WellnessSource, w *usecase.PointWriter, m drepo.Metrics, l *applogger.Logger) *usecase.Importer {
	return usecase.NewImporter(src, w, m, l, os.Stdout)
}

// ProvideApp creates the run lifecycle.
func ProvideApp(
	cfg *config.Config,
	src drepo.WellnessSource,
	importer *usecase.Importer,
	w *usecase.PointWriter,
	rec *metrics.Recorder,
	l *applogger.Logger,
) *runner.App {
	return runner.New(cfg, src, importer, w, rec, l)
}
