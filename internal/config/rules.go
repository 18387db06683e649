package config

import (
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// RulesConfig holds the draw rule settings.
type RulesConfig struct {
	// RepetitionThreshold is how many occurrences of a position draw the
	// game. Zero means the standard three.
	RepetitionThreshold int

	// HalfMoveLimit is the half-move clock value that draws the game.
	// Zero means the standard hundred.
	HalfMoveLimit int

	// StrictRepetition counts positions with different castling rights or
	// en passant possibilities as different positions.
	StrictRepetition bool
}

// NewRulesConfig creates a RulesConfig with the standard thresholds.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		RepetitionThreshold: engine.DefaultRepetitionThreshold,
		HalfMoveLimit:       engine.DefaultHalfMoveLimit,
	}
}

// Validate checks that the thresholds make sense.
func (r *RulesConfig) Validate() error {
	if r.RepetitionThreshold < 0 || r.RepetitionThreshold == 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "repetition threshold %d: must be 0 or at least 2", r.RepetitionThreshold)
	}
	if r.HalfMoveLimit < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "half-move limit %d: must not be negative", r.HalfMoveLimit)
	}
	return nil
}

// DrawRules converts the settings into the thresholds the engine applies,
// with zero values replaced by the standard ones.
func (r *RulesConfig) DrawRules() engine.DrawRules {
	rules := engine.DefaultDrawRules()
	if r.RepetitionThreshold > 0 {
		rules.RepetitionThreshold = r.RepetitionThreshold
	}
	if r.HalfMoveLimit > 0 {
		rules.HalfMoveLimit = r.HalfMoveLimit
	}
	return rules
}
