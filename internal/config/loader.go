package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
)

// LoadConfig loads the configuration from file and environment variables.
// Precedence: environment variables (RISKBANK_*) over config.yaml over defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("dataset.default_path", "application_train.csv")
	v.SetDefault("dataset.cache_capacity", constants.DatasetCacheCapacity)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.dataviz_ttl", int(constants.DatavizCacheTTL.Seconds()))
	v.SetDefault("cache.prediction_ttl", int(constants.PredictionCacheTTL.Seconds()))
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("client.base_url", "http://localhost:8000")
	v.SetDefault("client.timeout", int(constants.DefaultClientTimeout.Seconds()))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("monitoring.metrics_enabled", true)
	v.SetDefault("monitoring.pprof_enabled", false)

	// Load from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/riskbanking/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Load from environment variables
	v.SetEnvPrefix("RISKBANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ErrInternal("failed to unmarshal config").WithCause(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
