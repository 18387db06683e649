// Package config provides configuration for chess games and the chessplay
// command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// Config holds all game and program configuration.
type Config struct {
	// StartFEN is the position games start from. Empty means the
	// standard starting position.
	StartFEN string

	// Rules holds the draw thresholds.
	Rules *RulesConfig

	// Log holds logger settings.
	Log *LogConfig

	// Output holds report formatting settings.
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Log:        NewLogConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// StartFENOrDefault returns StartFEN, or the standard starting position
// when it is empty.
func (c *Config) StartFENOrDefault() string {
	if c.StartFEN == "" {
		return engine.InitialFEN
	}
	return c.StartFEN
}

// Validate checks every section and returns the first problem found,
// wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.StartFEN != "" {
		if _, err := engine.NewPositionFromFEN(c.StartFEN); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "start position: %v", err)
		}
	}
	if c.Rules != nil {
		if err := c.Rules.Validate(); err != nil {
			return err
		}
	}
	if c.Log != nil {
		if err := c.Log.Validate(); err != nil {
			return err
		}
	}
	if c.Output != nil {
		if err := c.Output.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String summarises the configuration for logging.
func (c *Config) String() string {
	rules := c.Rules
	if rules == nil {
		rules = NewRulesConfig()
	}
	return fmt.Sprintf("start=%q repetition=%d halfmove=%d strict=%v",
		c.StartFENOrDefault(), rules.RepetitionThreshold, rules.HalfMoveLimit, rules.StrictRepetition)
}
