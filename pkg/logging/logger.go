// Package logging builds the process-wide zap logger. Components receive it
// via constructor injection and scope it with Named.
package logging

import (
	"go.uber.org/zap"
)

// NewLogger creates a logger appropriate for the environment: human-readable
// console output for local development, JSON elsewhere. level is a zap level
// string ("debug", "info", ...); unparseable values fall back to info.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		parsed = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = parsed

	return cfg.Build()
}
