package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasr/greeting-service/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: config.LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info().Str("component", "test").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: config.LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: config.LogFormatConsole}, &buf)
	require.NoError(t, err)

	logger.Debug().Str("port", "8080").Msg("starting")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "starting")
	assert.Contains(t, out, "port=8080")
	assert.False(t, json.Valid(buf.Bytes()), "console output should not be JSON")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: config.LogFormatJSON}, &bytes.Buffer{})
	assert.Error(t, err)
}
