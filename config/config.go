package config

import (
	"os"
	"time"
)

// MetricNamespace prefixes every exported metric.
const MetricNamespace = "l99"

// Law checker defaults.
const (
	// DefaultTrials is the number of generated lists each law is checked against.
	DefaultTrials = 1000
	// DefaultMaxLen is the upper bound of a generated list length.
	DefaultMaxLen = 64
	// MaxMaxLen caps --max-len.
	MaxMaxLen = 1 << 20
	// DefaultCheckTimeout bounds a whole law checker run.
	DefaultCheckTimeout = time.Minute
)

// DefaultLogLevel is used when L99_LOG_LEVEL is not set.
const DefaultLogLevel = "info"

// LogLevel returns the default log level from the L99_LOG_LEVEL environment variable.
func LogLevel() string {
	if lvl := os.Getenv("L99_LOG_LEVEL"); lvl != "" {
		return lvl
	}

	return DefaultLogLevel
}
