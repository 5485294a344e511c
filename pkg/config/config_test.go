package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Molit.Timeout)
	assert.Equal(t, 1000, cfg.Molit.PageSize)
	assert.Equal(t, 1, cfg.Series.Concurrency)
	assert.Equal(t, 6, cfg.Series.DefaultHorizon)
	assert.Zero(t, cfg.Cache.OpenPeriodTTL)
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
molit:
  timeout: 3s
  service_key: from-file
cache:
  capacity: 16
  open_period_ttl: 30m
`)
	t.Setenv("DATA_GO_KR_KEY", "from-env")
	t.Setenv("SERIES_DEFAULT_MONTHS", "24")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Molit.Timeout)
	assert.Equal(t, "from-env", cfg.Molit.ServiceKey)
	assert.Equal(t, 16, cfg.Cache.Capacity)
	assert.Equal(t, 30*time.Minute, cfg.Cache.OpenPeriodTTL)
	assert.Equal(t, 24, cfg.Series.DefaultMonths)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "series:\n  default_horizon: 40\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, "cache:\n  capacity: 1\n")
	_, err = LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, "server: [")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateRedisOnlyWhenEnabled(t *testing.T) {
	cfg := Default()
	cfg.Redis.Host = ""
	assert.NoError(t, cfg.Validate())

	cfg.Redis.Enabled = true
	assert.Error(t, cfg.Validate())
}
