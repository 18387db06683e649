package game

import "github.com/lgbarn/chessgame-go/internal/chess"

// turnState is the controller's mode between plies. Exactly one of
// normalTurn, awaitingPromotion or reviewing.
type turnState interface {
	isTurnState()
}

// normalTurn accepts selections and moves from the side to move.
type normalTurn struct{}

// awaitingPromotion suspends the turn until the pawn on square is given
// its new kind.
type awaitingPromotion struct {
	square chess.Square
	colour chess.Colour
}

// reviewing shows the position after cursor plies of the history. The
// live game is untouched.
type reviewing struct {
	cursor int
	pos    *chess.Position
}

func (normalTurn) isTurnState()        {}
func (awaitingPromotion) isTurnState() {}
func (reviewing) isTurnState()         {}
