package config

import (
	"fmt"
	"time"
)

// Config holds the application's configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Client     ClientConfig     `mapstructure:"client"`
	Log        LogConfig        `mapstructure:"log"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig configures the HTTP scoring service.
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetConfig configures the CSV dataset store.
type DatasetConfig struct {
	// DefaultPath is the CSV used when a request carries no path override.
	DefaultPath string `mapstructure:"default_path"`
	// CacheCapacity bounds the number of distinct dataset paths held in memory.
	CacheCapacity int `mapstructure:"cache_capacity"`
}

// CacheConfig configures the query-string response cache.
type CacheConfig struct {
	// Backend selects the cache implementation: "memory" or "redis".
	Backend       string      `mapstructure:"backend"`
	DatavizTTL    int         `mapstructure:"dataviz_ttl"`    // in seconds
	PredictionTTL int         `mapstructure:"prediction_ttl"` // in seconds
	Redis         RedisConfig `mapstructure:"redis"`
}

// DatavizCacheTTL returns the visualization response cache lifetime.
func (c *CacheConfig) DatavizCacheTTL() time.Duration {
	return time.Duration(c.DatavizTTL) * time.Second
}

// PredictionCacheTTL returns the prediction response cache lifetime.
func (c *CacheConfig) PredictionCacheTTL() time.Duration {
	return time.Duration(c.PredictionTTL) * time.Second
}

// RedisConfig configures the optional Redis response cache backend.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ClientConfig configures the presentation client's API access.
type ClientConfig struct {
	// BaseURL is the scoring service base URL.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds the API call before falling back locally, in seconds.
	Timeout int `mapstructure:"timeout"`
}

// TimeoutDuration returns the API call timeout.
func (c *ClientConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MonitoringConfig configures metrics and profiling endpoints.
type MonitoringConfig struct {
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	PprofEnabled   bool `mapstructure:"pprof_enabled"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Dataset.CacheCapacity <= 0 {
		return fmt.Errorf("dataset cache capacity must be positive, got %d", c.Dataset.CacheCapacity)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend: %q", c.Cache.Backend)
	}
	return nil
}
