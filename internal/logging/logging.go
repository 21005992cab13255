// Package logging builds the slog.Logger used by the command line and the
// websocket server.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Accepted values of the level and format settings.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidLevel and ErrInvalidFormat report unknown settings.
var (
	ErrInvalidLevel  = errors.New("logging: invalid level")
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Validate checks a level/format pair without building a logger.
func Validate(levelStr, formatStr string) error {
	if _, err := ParseLevel(levelStr); err != nil {
		return err
	}
	switch strings.ToLower(formatStr) {
	case FormatText, FormatJSON, "":
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidFormat, formatStr)
}

// New creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
// Unknown levels fall back to info and unknown formats to text.
func New(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, _ := ParseLevel(levelStr)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(formatStr) == FormatJSON {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
