package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string

	// Development switches to human-readable console output.
	Development bool
}

// NewLogConfig creates a LogConfig logging at info level.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// Validate checks the level name.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", l.Level)
	}
	return nil
}

// Build creates a logger writing to stderr.
func (l *LogConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", l.Level)
	}

	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
