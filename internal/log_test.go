package internal

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel(" debug ")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, level)

	_, err = ParseLogLevel("LOUD")
	assert.Error(t, err)
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	buf := captureLog(t)
	logger := NewLogger(LogLevelWarn)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	assert.Equal(t, "[WARN] shown 3\n[ERROR] shown 4\n", buf.String())
}

func TestNewDefaultLoggerReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	assert.Equal(t, LogLevelError, NewDefaultLogger().GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, LogLevelInfo, NewDefaultLogger().GetLevel())
}
