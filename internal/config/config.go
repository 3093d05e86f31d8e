// Package config provides the build-time configuration of the launcher
package config

import (
	"fmt"
	"strconv"

	"rundetached/internal/constants"
)

// Build-time settings. The launcher reads no files or environment variables,
// so these are the only knobs, set with e.g.
//
//	go build -ldflags "-X rundetached/internal/config.lowerPriority=false"
var (
	lowerPriority = "true"
	logLevel      = constants.LogLevelError
)

// Config holds the launcher configuration
type Config struct {
	// LowerPriority drops a started child to below normal priority
	LowerPriority bool

	// LogLevel is the logrus level for trace output on stderr
	LogLevel string

	// MaxMessageLength bounds the failure diagnostic, in characters
	MaxMessageLength int
}

// New returns the default configuration
func New() *Config {
	return &Config{
		LowerPriority:    true,
		LogLevel:         constants.LogLevelError,
		MaxMessageLength: constants.MaxMessageLength,
	}
}

// Load returns the default configuration with the build-time settings applied
func Load() (*Config, error) {
	cfg := New()

	lower, err := strconv.ParseBool(lowerPriority)
	if err != nil {
		return nil, fmt.Errorf("invalid build setting lowerPriority %q: %w", lowerPriority, err)
	}
	cfg.LowerPriority = lower

	switch logLevel {
	case constants.LogLevelDebug, constants.LogLevelInfo, constants.LogLevelWarn, constants.LogLevelError:
		cfg.LogLevel = logLevel
	default:
		return nil, fmt.Errorf("invalid build setting logLevel %q", logLevel)
	}

	return cfg, nil
}
