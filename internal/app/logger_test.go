package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range testCases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("info", "json", &buf)
	logger.Debug("hidden")
	logger.Info("Rain step finished.", "step", 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Rain step finished.", record["msg"])
	assert.Equal(t, float64(1), record["step"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	newLogger("warn", "text", &buf).Warn("careful", "points", 3)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "points=3")
}
