package config

import "github.com/lgbarn/chessgame-go/internal/errors"

// OutputFormat represents the notation used for move lists.
type OutputFormat int

const (
	HALG OutputFormat = iota // Hyphenated long algebraic (Ng1-f3)
	UCI                      // UCI format (g1f3)
)

// ParseOutputFormat parses a notation name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "halg", "long":
		return HALG, nil
	case "uci":
		return UCI, nil
	}
	return HALG, errors.Wrapf(errors.ErrInvalidConfig, "output format %q", name)
}

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format specifies the move notation
	Format OutputFormat

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints the board diagram in text reports
	ShowBoard bool

	// Color highlights text reports with terminal colours
	Color bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    HALG,
		ShowBoard: true,
		Color:     true,
	}
}

// Validate checks the notation format.
func (o *OutputConfig) Validate() error {
	if o.Format != HALG && o.Format != UCI {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %d", o.Format)
	}
	return nil
}
