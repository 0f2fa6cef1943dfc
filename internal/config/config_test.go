package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, 0, cfg.HTTP.Retries)
	assert.Equal(t, float64(0), cfg.HTTP.RateLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOMKIT_HTTP_TIMEOUT", "5")
	t.Setenv("DOMKIT_TOKEN", "secret")
	t.Setenv("DOMKIT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "secret", cfg.HTTP.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("DOMKIT_HTTP_TIMEOUT", "not a number")

	cfg := LoadOrDefault()
	assert.Equal(t, Default(), cfg)
}
