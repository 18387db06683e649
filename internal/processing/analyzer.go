// Package processing provides analysis and validation of recorded move
// sequences.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/hashing"
)

// Automatic draw thresholds. They are reported, never enforced.
const (
	seventyFiveMoveLimit = 150
	fivefoldThreshold    = 5
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalPosition *chess.Position
	Plies         int
	Captures      int
	Checks        int

	// Position hashes, start position first.
	Positions []uint64

	// Distinct positions reached, start position included.
	UniquePositions int
	// Highest occurrence count of any position.
	MaxRepetitions int

	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool
}

// AnalyzeGame replays records from start and analyzes them. Repetitions
// are counted in a hashing.RepetitionTable; strict adds castling and en
// passant rights. A trailing promotion still awaiting its piece is not
// replayed.
func AnalyzeGame(start *chess.Position, records []chess.MoveRecord, rules engine.DrawRules, strict bool) (*GameAnalysis, error) {
	rules = withDefaults(rules)
	analysis := &GameAnalysis{HasMaterialOdds: engine.HasMaterialOdds(start.Board)}

	table := hashing.NewRepetitionTable(strict)
	pos := start
	table.Add(pos)
	analysis.Positions = append(analysis.Positions, hashing.PositionHash(pos, strict))

	for i, rec := range records {
		if rec.IsPromotion && rec.PromotedTo == chess.NoKind && i == len(records)-1 {
			break
		}
		next, err := engine.ReplayRecord(pos, rec)
		if err != nil {
			return nil, &errors.MoveError{Err: err, Ply: i + 1, MoveText: engine.NotateUCI(rec)}
		}
		pos = next
		analysis.Plies++

		if rec.IsCapture() {
			analysis.Captures++
		}
		if engine.IsInCheck(pos.Board, pos.ToMove) {
			analysis.Checks++
		}
		if rec.PromotedTo != chess.NoKind && rec.PromotedTo != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		if engine.IsFiftyMoveRule(pos.HalfMoveClock, rules.HalfMoveLimit) {
			analysis.HasFiftyMoveRule = true
		}
		if pos.HalfMoveClock >= seventyFiveMoveLimit {
			analysis.Has75MoveRule = true
		}

		table.Add(pos)
		analysis.Positions = append(analysis.Positions, hashing.PositionHash(pos, strict))
	}

	analysis.UniquePositions = table.UniqueCount()
	analysis.MaxRepetitions = table.MaxCount()
	analysis.HasRepetition = analysis.MaxRepetitions >= rules.RepetitionThreshold
	analysis.Has5FoldRepetition = analysis.MaxRepetitions >= fivefoldThreshold
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(pos.Board)
	analysis.FinalPosition = pos
	return analysis, nil
}

// withDefaults fills unset thresholds with the standard values.
func withDefaults(rules engine.DrawRules) engine.DrawRules {
	defaults := engine.DefaultDrawRules()
	if rules.RepetitionThreshold <= 0 {
		rules.RepetitionThreshold = defaults.RepetitionThreshold
	}
	if rules.HalfMoveLimit <= 0 {
		rules.HalfMoveLimit = defaults.HalfMoveLimit
	}
	return rules
}

// ValidationResult holds the result of move list validation.
type ValidationResult struct {
	Valid    bool
	Plies    int
	ErrorPly int
	Err      error
	ErrorMsg string
}

// ValidateMoves checks that every UCI move in moves is legal when played
// in order from start. Only the final move may be a promotion without a
// piece letter.
func ValidateMoves(start *chess.Position, moves []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	pos := start
	pending := false
	for i, text := range moves {
		ply := i + 1
		if pending {
			return result.fail(ply, text, errors.ErrPromotionPending)
		}

		m, err := engine.ParseUCIMove(text)
		if err != nil {
			return result.fail(ply, text, err)
		}
		next, rec, err := engine.ApplyMove(pos, m)
		if err != nil {
			return result.fail(ply, text, err)
		}
		pos = next
		pending = rec.IsPromotion && rec.PromotedTo == chess.NoKind
		result.Plies = ply
	}

	return result
}

// fail marks the result invalid at ply.
func (r *ValidationResult) fail(ply int, text string, err error) *ValidationResult {
	r.Valid = false
	r.ErrorPly = ply
	r.Err = err
	r.ErrorMsg = fmt.Sprintf("invalid move at ply %d: %s: %v", ply, text, err)
	return r
}
