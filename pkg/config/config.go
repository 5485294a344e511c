package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	Env             string        `yaml:"env" env:"ENV"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
}

// MolitConfig configures the apartment trade feed client.
type MolitConfig struct {
	BaseURL    string        `yaml:"base_url" env:"MOLIT_BASE_URL"`
	ServiceKey string        `yaml:"service_key" env:"DATA_GO_KR_KEY"`
	Timeout    time.Duration `yaml:"timeout" env:"MOLIT_TIMEOUT"`
	RatePerSec float64       `yaml:"rate_per_sec" env:"MOLIT_RATE_PER_SEC"`
	Burst      int           `yaml:"burst" env:"MOLIT_BURST"`
	PageSize   int           `yaml:"page_size" env:"MOLIT_PAGE_SIZE"`
	UserAgent  string        `yaml:"user_agent" env:"MOLIT_USER_AGENT"`
}

// CacheConfig configures the in-memory period cache. Capacity bounds the total
// entry count; a quarter of it is reserved for current-month entries.
// OpenPeriodTTL of zero keeps entries for the current month until evicted.
type CacheConfig struct {
	Capacity      int           `yaml:"capacity" env:"CACHE_CAPACITY"`
	OpenPeriodTTL time.Duration `yaml:"open_period_ttl" env:"CACHE_OPEN_PERIOD_TTL"`
}

type RedisConfig struct {
	Enabled     bool   `yaml:"enabled" env:"REDIS_ENABLED"`
	Host        string `yaml:"host" env:"REDIS_HOST"`
	Port        int    `yaml:"port" env:"REDIS_PORT"`
	Password    string `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int    `yaml:"db" env:"REDIS_DB"`
	TLSEnabled  bool   `yaml:"tls_enabled" env:"REDIS_TLS_ENABLED"`
	TLSCertFile string `yaml:"tls_cert_file" env:"REDIS_TLS_CERT_FILE"`
	TLSKeyFile  string `yaml:"tls_key_file" env:"REDIS_TLS_KEY_FILE"`
}

type SeriesConfig struct {
	Concurrency    int `yaml:"concurrency" env:"SERIES_CONCURRENCY"`
	DefaultMonths  int `yaml:"default_months" env:"SERIES_DEFAULT_MONTHS"`
	MaxMonths      int `yaml:"max_months" env:"SERIES_MAX_MONTHS"`
	DefaultHorizon int `yaml:"default_horizon" env:"FORECAST_DEFAULT_HORIZON"`
}

type RateLimitConfig struct {
	RequestsPerMinute float64 `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"`
	Burst             int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Molit     MolitConfig     `yaml:"molit"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Series    SeriesConfig    `yaml:"series"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns the configuration used when neither file nor environment
// set a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Env:             "development",
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
		Molit: MolitConfig{
			BaseURL:    "https://apis.data.go.kr/1613000/RTMSDataSvcAptTrade",
			Timeout:    10 * time.Second,
			RatePerSec: 5,
			Burst:      1,
			PageSize:   1000,
			UserAgent:  "realestate-valley/1.0",
		},
		Cache: CacheConfig{
			Capacity: 2048,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
		},
		Series: SeriesConfig{
			Concurrency:    1,
			DefaultMonths:  12,
			MaxMonths:      60,
			DefaultHorizon: 6,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 100,
			Burst:             10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads the YAML file at path (optional), then applies
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// environment only
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and fills zero values that would disable a component.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if c.Molit.BaseURL == "" {
		return fmt.Errorf("MOLIT_BASE_URL is required")
	}
	if c.Molit.Timeout <= 0 {
		return fmt.Errorf("MOLIT_TIMEOUT must be positive")
	}
	if c.Molit.PageSize <= 0 {
		return fmt.Errorf("MOLIT_PAGE_SIZE must be positive")
	}
	if c.Molit.Burst <= 0 {
		c.Molit.Burst = 1
	}
	if c.Cache.Capacity < 2 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 2")
	}
	if c.Cache.OpenPeriodTTL < 0 {
		return fmt.Errorf("CACHE_OPEN_PERIOD_TTL must not be negative")
	}
	if c.Series.Concurrency <= 0 {
		c.Series.Concurrency = 1
	}
	if c.Series.MaxMonths <= 0 {
		return fmt.Errorf("SERIES_MAX_MONTHS must be positive")
	}
	if c.Series.DefaultMonths <= 0 || c.Series.DefaultMonths > c.Series.MaxMonths {
		return fmt.Errorf("SERIES_DEFAULT_MONTHS must be between 1 and %d", c.Series.MaxMonths)
	}
	if c.Series.DefaultHorizon < 1 || c.Series.DefaultHorizon > 24 {
		return fmt.Errorf("FORECAST_DEFAULT_HORIZON must be between 1 and 24")
	}
	if c.Redis.Enabled {
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required")
		}
		if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
			return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must be non-negative")
		}
		if c.Redis.TLSEnabled && c.Redis.TLSCertFile != "" {
			if _, err := os.Stat(c.Redis.TLSCertFile); os.IsNotExist(err) {
				return fmt.Errorf("TLS certificate file does not exist: %s", c.Redis.TLSCertFile)
			}
		}
	}
	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
