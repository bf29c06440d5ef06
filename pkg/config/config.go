package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendInflux     = "influx"
	BackendClickHouse = "clickhouse"
	BackendKafka      = "kafka"
	BackendStdout     = "stdout"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Log         struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"log"`
	Range struct {
		Start string `yaml:"start" validate:"required,datetime=2006-01-02"`
		End   string `yaml:"end" validate:"required,datetime=2006-01-02"`
	} `yaml:"range"`
	Garmin struct {
		Email     string        `yaml:"email" validate:"required,email"`
		Password  string        `yaml:"-"`
		BaseURL   string        `yaml:"base_url" default:"https://connectapi.garmin.com" validate:"required,url"`
		SSOURL    string        `yaml:"sso_url" default:"https://sso.garmin.com" validate:"required,url"`
		UserAgent string        `yaml:"user_agent" default:"GCM-iOS-5.7.2.1"`
		Timeout   time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	} `yaml:"garmin"`
	Backend struct {
		Type string `yaml:"type" default:"influx" validate:"oneof=influx clickhouse kafka stdout"`
	} `yaml:"backend"`
	Influx struct {
		Server  string        `yaml:"server" validate:"omitempty,url"`
		Org     string        `yaml:"org"`
		Bucket  string        `yaml:"bucket"`
		Token   string        `yaml:"token"`
		Timeout time.Duration `yaml:"timeout" default:"20s"`
	} `yaml:"influx"`
	ClickHouse struct {
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port" default:"9000"`
		Database     string        `yaml:"database" default:"garmin"`
		Table        string        `yaml:"table" default:"wellness_points"`
		User         string        `yaml:"user" default:"default"`
		Password     string        `yaml:"password"`
		UseHTTP      bool          `yaml:"use_http"`
		DialTimeout  time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic" default:"garmin.wellness"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		BatchSize    int           `yaml:"batch_size" default:"500" validate:"gt=0"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"kafka"`
	Cache struct {
		Type  string        `yaml:"type" default:"none" validate:"oneof=none memory redis"`
		TTL   time.Duration `yaml:"ttl" default:"24h"`
		Redis struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"garmin"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

var validate = validator.New()

// New returns a Config holding only default values.
func New() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	return &c, nil
}

// Load reads an optional YAML configuration file on top of the defaults.
// An empty path yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("GARMIN_EMAIL"); v != "" {
		c.Garmin.Email = v
	}
	if v := os.Getenv("GARMIN_PASSWORD"); v != "" {
		c.Garmin.Password = v
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("INFLUX_SERVER"); v != "" {
		c.Influx.Server = v
	}
	if v := os.Getenv("INFLUX_ORG"); v != "" {
		c.Influx.Org = v
	}
	if v := os.Getenv("INFLUX_BUCKET"); v != "" {
		c.Influx.Bucket = v
	}
	if v := os.Getenv("INFLUX_TOKEN"); v != "" {
		c.Influx.Token = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Cache.Redis.DB = db
		}
	}

	return c, nil
}

// Validate checks struct rules and the settings the selected backend needs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Backend.Type {
	case BackendInflux:
		if c.Influx.Server == "" || c.Influx.Org == "" || c.Influx.Bucket == "" || c.Influx.Token == "" {
			return fmt.Errorf("backend influx requires server, org, bucket and token")
		}
	case BackendClickHouse:
		if c.ClickHouse.Host == "" {
			return fmt.Errorf("backend clickhouse requires clickhouse.host")
		}
	case BackendKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("backend kafka requires kafka.brokers")
		}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
