package chess

// ResultKind classifies how a game ended.
type ResultKind int

const (
	NoResult ResultKind = iota
	Win
	Draw
	TimeForfeit
	Resignation
)

// DrawReason gives the rule under which a game was drawn.
type DrawReason int

const (
	NoDraw DrawReason = iota
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
	InsufficientMaterial
	Agreement
)

// String returns the string representation of a draw reason.
func (d DrawReason) String() string {
	switch d {
	case Stalemate:
		return "Stalemate"
	case ThreefoldRepetition:
		return "Threefold Repetition"
	case FiftyMoveRule:
		return "Fifty-Move Rule"
	case InsufficientMaterial:
		return "Insufficient Material"
	case Agreement:
		return "Agreement"
	default:
		return "None"
	}
}

// Result is the outcome of a game. The zero Result means the game is
// still in progress.
type Result struct {
	Kind ResultKind

	// The winning side for Win, TimeForfeit and Resignation.
	Winner Colour

	// Set only when Kind is Draw.
	Reason DrawReason
}

// WinFor returns a checkmate win for the given colour.
func WinFor(winner Colour) Result {
	return Result{Kind: Win, Winner: winner}
}

// DrawBy returns a draw for the given reason.
func DrawBy(reason DrawReason) Result {
	return Result{Kind: Draw, Reason: reason}
}

// IsOver reports whether the result ends the game.
func (r Result) IsOver() bool {
	return r.Kind != NoResult
}

// HasWinner reports whether the result names a winning side.
func (r Result) HasWinner() bool {
	switch r.Kind {
	case Win, TimeForfeit, Resignation:
		return true
	default:
		return false
	}
}

// Score returns the PGN-style score string: "1-0", "0-1", "1/2-1/2" or "*".
func (r Result) Score() string {
	switch {
	case r.Kind == Draw:
		return "1/2-1/2"
	case r.HasWinner() && r.Winner == White:
		return "1-0"
	case r.HasWinner():
		return "0-1"
	default:
		return "*"
	}
}

// String describes the result, e.g. "White wins by checkmate" or
// "Draw (Stalemate)".
func (r Result) String() string {
	switch r.Kind {
	case Win:
		return r.Winner.String() + " wins by checkmate"
	case TimeForfeit:
		return r.Winner.String() + " wins on time"
	case Resignation:
		return r.Winner.String() + " wins by resignation"
	case Draw:
		return "Draw (" + r.Reason.String() + ")"
	default:
		return "In progress"
	}
}
