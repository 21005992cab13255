// Package config loads runtime settings from the environment, after an
// optional .env file has been merged into it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/algoviz/internal/logging"
)

// Environment variables read by Load.
const (
	EnvAddr        = "ALGOVIZ_ADDR"
	EnvSpeedMS     = "ALGOVIZ_SPEED_MS"
	EnvArrayLength = "ALGOVIZ_ARRAY_LENGTH"
	EnvLogLevel    = "ALGOVIZ_LOG_LEVEL"
	EnvLogFormat   = "ALGOVIZ_LOG_FORMAT"
)

// Defaults match the panels of the browser application.
const (
	DefaultAddr        = ":8080"
	DefaultSortSpeed   = 100 * time.Millisecond
	DefaultGraphSpeed  = 100 * time.Millisecond
	DefaultTreeSpeed   = 250 * time.Millisecond
	DefaultArrayLength = 50
	MinArrayLength     = 5
	MaxArrayLength     = 100
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all environment configuration.
type Config struct {
	Addr        string
	SortSpeed   time.Duration
	GraphSpeed  time.Duration
	TreeSpeed   time.Duration
	ArrayLength int
	LogLevel    string
	LogFormat   string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		SortSpeed:   DefaultSortSpeed,
		GraphSpeed:  DefaultGraphSpeed,
		TreeSpeed:   DefaultTreeSpeed,
		ArrayLength: DefaultArrayLength,
		LogLevel:    "info",
		LogFormat:   logging.FormatText,
	}
}

// Load merges the given .env files (or ./.env when none are named and it
// exists) into the process environment and reads Config from it. Variables
// already present in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("config: load %v: %w", files, err)
		}
	} else {
		// Load .env file if it exists
		_ = godotenv.Load()
	}

	return FromEnv(os.Getenv)
}

// FromEnv reads Config through getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvSpeedMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSpeedMS, v)
		}
		d := time.Duration(ms) * time.Millisecond
		cfg.SortSpeed, cfg.GraphSpeed, cfg.TreeSpeed = d, d, d
	}
	if v := getenv(EnvArrayLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvArrayLength, v)
		}
		cfg.ArrayLength = n
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.ArrayLength < MinArrayLength || c.ArrayLength > MaxArrayLength {
		return fmt.Errorf("%w: array length %d not in [%d,%d]",
			ErrInvalidConfig, c.ArrayLength, MinArrayLength, MaxArrayLength)
	}
	if c.SortSpeed < 0 || c.GraphSpeed < 0 || c.TreeSpeed < 0 {
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	}
	if err := logging.Validate(c.LogLevel, c.LogFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
