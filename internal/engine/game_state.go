package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// DrawRules holds the thresholds Adjudicate applies.
type DrawRules struct {
	// Occurrences of a position that draw the game.
	RepetitionThreshold int

	// Half-move clock value that draws the game.
	HalfMoveLimit int
}

// DefaultDrawRules returns the standard thresholds: threefold repetition
// and fifty moves by each side.
func DefaultDrawRules() DrawRules {
	return DrawRules{
		RepetitionThreshold: DefaultRepetitionThreshold,
		HalfMoveLimit:       DefaultHalfMoveLimit,
	}
}

// Adjudicate decides the result of a position just reached by a completed
// ply. repetitions is how often the position has occurred, this time
// included. Conditions are checked in order: checkmate, stalemate,
// repetition, the half-move clock, then insufficient material.
func Adjudicate(pos *chess.Position, repetitions int, rules DrawRules) chess.Result {
	rules = rules.withDefaults()
	inCheck := IsInCheck(pos.Board, pos.ToMove)
	if !HasLegalMoves(pos, pos.ToMove) {
		if inCheck {
			return chess.WinFor(pos.ToMove.Opposite())
		}
		return chess.DrawBy(chess.Stalemate)
	}

	switch {
	case repetitions >= rules.RepetitionThreshold:
		return chess.DrawBy(chess.ThreefoldRepetition)
	case IsFiftyMoveRule(pos.HalfMoveClock, rules.HalfMoveLimit):
		return chess.DrawBy(chess.FiftyMoveRule)
	case HasInsufficientMaterial(pos.Board):
		return chess.DrawBy(chess.InsufficientMaterial)
	}

	return chess.Result{}
}

// withDefaults fills unset thresholds with the standard values.
func (r DrawRules) withDefaults() DrawRules {
	if r.RepetitionThreshold <= 0 {
		r.RepetitionThreshold = DefaultRepetitionThreshold
	}
	if r.HalfMoveLimit <= 0 {
		r.HalfMoveLimit = DefaultHalfMoveLimit
	}
	return r
}
