package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	c.Range.Start = "2024-01-01"
	c.Range.End = "2024-01-07"
	c.Garmin.Email = "runner@example.com"
	c.Influx.Server = "http://influx:8086"
	c.Influx.Org = "home"
	c.Influx.Bucket = "garmin"
	c.Influx.Token = "dG9rZW4="
	return c
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, BackendInflux, c.Backend.Type)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 30*time.Second, c.Garmin.Timeout)
	assert.Equal(t, CacheNone, c.Cache.Type)
	assert.Equal(t, -1, c.Kafka.RequiredAcks)
	assert.Equal(t, "wellness_points", c.ClickHouse.Table)
}

func TestValidConfigPasses(t *testing.T) {
	require.NoError(t, validConfig(t).Validate())
}

func TestValidateRejectsBadDate(t *testing.T) {
	c := validConfig(t)
	c.Range.Start = "01/01/2024"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Range.Start must be formatted as 2006-01-02")
}

func TestValidateRejectsBadEmail(t *testing.T) {
	c := validConfig(t)
	c.Garmin.Email = "not-an-email"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
}

func TestValidateRequiresInfluxSettings(t *testing.T) {
	c := validConfig(t)
	c.Influx.Token = ""
	require.Error(t, c.Validate())

	c.Backend.Type = BackendStdout
	require.NoError(t, c.Validate())
}

func TestValidateBackendRequirements(t *testing.T) {
	c := validConfig(t)
	c.Backend.Type = BackendKafka
	require.Error(t, c.Validate())
	c.Kafka.Brokers = []string{"localhost:9092"}
	require.NoError(t, c.Validate())

	c.Backend.Type = BackendClickHouse
	require.Error(t, c.Validate())
	c.ClickHouse.Host = "localhost"
	require.NoError(t, c.Validate())

	c.Backend.Type = "postgres"
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "one of"))
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  type: stdout
garmin:
  email: runner@example.com
  timeout: 5s
cache:
  type: memory
  ttl: 1h
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendStdout, c.Backend.Type)
	assert.Equal(t, 5*time.Second, c.Garmin.Timeout)
	assert.Equal(t, CacheMemory, c.Cache.Type)
	assert.Equal(t, time.Hour, c.Cache.TTL)
	assert.Equal(t, "https://connectapi.garmin.com", c.Garmin.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("INFLUX_TOKEN", "from-env")
	t.Setenv("GARMIN_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	c, err := LoadWithEnv("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.Influx.Token)
	assert.Equal(t, "secret", c.Garmin.Password)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Kafka.Brokers)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\nbackend:\n  type: stdout\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendInflux, c.Backend.Type)
}

func TestLoadExampleConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendInflux, c.Backend.Type)
	assert.Equal(t, "garmin", c.Influx.Bucket)
	assert.Equal(t, "2024-01-01", c.Range.Start)
}
