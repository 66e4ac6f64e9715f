package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	SetLevel(LevelWarn)
	SetOutput(os.Stderr)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestFiltering(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	assert.Zero(t, buf.Len(), "debug and info should be dropped at warn level")

	Warn("shown %s", "warn")
	Error("shown %s", "error")

	out := buf.String()
	assert.Contains(t, out, "[WARN] shown warn")
	assert.Contains(t, out, "[ERROR] shown error")
	assert.Contains(t, out, "logger_test.go:", "lines should carry the caller's file")
}

func TestDebugLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelDebug)

	Debug("value=%v", 42)
	assert.Contains(t, buf.String(), "[DEBUG] value=42")
	assert.True(t, Enabled(LevelDebug))
}

func TestConfigure(t *testing.T) {
	defer reset()

	t.Setenv(EnvLevel, "")
	require.NoError(t, Configure("error"))
	assert.Equal(t, LevelError, GetLevel())

	assert.Error(t, Configure("loud"))
	assert.Equal(t, LevelError, GetLevel(), "failed Configure keeps the old level")

	t.Setenv(EnvLevel, "debug")
	require.NoError(t, Configure("error"))
	assert.Equal(t, LevelDebug, GetLevel(), "environment overrides the configured name")
}
