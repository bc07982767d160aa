package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mnemo-dev/mnemo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 0.9, cfg.RequestedRetention)
	assert.Equal(t, 36500, cfg.MaximumIntervalDays)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 90, cfg.SimDays)
	assert.Equal(t, 100, cfg.SimDeckSize)
	assert.Equal(t, int64(1), cfg.SimSeed)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MNEMO_RETENTION", "0.85")
	t.Setenv("MNEMO_MAX_INTERVAL_DAYS", "365")
	t.Setenv("MNEMO_LOG_LEVEL", "DEBUG")
	t.Setenv("MNEMO_SIM_SEED", "99")

	cfg := config.Load()

	assert.Equal(t, 0.85, cfg.RequestedRetention)
	assert.Equal(t, 365, cfg.MaximumIntervalDays)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, int64(99), cfg.SimSeed)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MNEMO_RETENTION", "ninety percent")
	t.Setenv("MNEMO_SIM_DAYS", "two weeks")

	cfg := config.Load()

	assert.Equal(t, 0.9, cfg.RequestedRetention)
	assert.Equal(t, 90, cfg.SimDays)
}
