package config

import (
	"testing"
	"time"

	"showcase/internal"
	"showcase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "PROGRESS_STEPS", "CHART_START", "CHART_SEED", "TOP_WORDS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30, cfg.Chart.Points)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Chart.Start)
	assert.Equal(t, 100, cfg.Progress.Steps)
	assert.Equal(t, 10*time.Millisecond, cfg.Progress.Interval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROGRESS_INTERVAL", "1ms")
	t.Setenv("CHART_START", "2025-03-01")
	t.Setenv("CHART_SEED", "42")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Millisecond, cfg.Progress.Interval)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), cfg.Chart.Start)
	assert.Equal(t, uint64(42), cfg.Chart.Seed)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, internal.LogLevelDebug, cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		t.Setenv("CHART_START", "yesterday")
		_, err := Load()
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})

	t.Run("zero steps", func(t *testing.T) {
		t.Setenv("PROGRESS_STEPS", "0")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PROGRESS_STEPS")
	})
}
