package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	Logging LogConfig
}

// HTTPConfig holds network helper configuration.
type HTTPConfig struct {
	TimeoutSeconds int     `envconfig:"DOMKIT_HTTP_TIMEOUT" default:"30"`
	Retries        int     `envconfig:"DOMKIT_HTTP_RETRIES" default:"0"`
	RateLimit      float64 `envconfig:"DOMKIT_HTTP_RATE_LIMIT" default:"0"`
	Token          string  `envconfig:"DOMKIT_TOKEN" default:""`
}

// StorageConfig holds durable key-value store configuration.
type StorageConfig struct {
	// Dir is resolved to the user cache dir when empty.
	Dir string `envconfig:"DOMKIT_STORAGE_DIR" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"DOMKIT_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"DOMKIT_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
			Retries:        0,
			RateLimit:      0,
		},
		Storage: StorageConfig{},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
