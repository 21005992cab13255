package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("debug", "json"))
	assert.ErrorIs(t, Validate("debug", "xml"), ErrInvalidFormat)
	assert.ErrorIs(t, Validate("trace", "text"), ErrInvalidLevel)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "json", &buf)

	logger.Info("dropped")
	logger.Warn("kept", "panel", "sort")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "sort", rec["panel"])
}

func TestNew_TextByDefault(t *testing.T) {
	var buf bytes.Buffer
	New("debug", "whatever", &buf).Debug("hi")
	assert.Contains(t, buf.String(), "level=DEBUG msg=hi")
}
