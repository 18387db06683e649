package game

import (
	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// Play applies moves in UCI notation ("e2e4", "e7e8q") through the same
// selection and move path as interactive play. A promotion without a
// piece letter leaves the game awaiting CompletePromotion. Failures are
// reported as *errors.MoveError and stop at the first bad move.
func (g *Game) Play(moves ...string) error {
	for _, s := range moves {
		if err := g.playOne(s); err != nil {
			return &errors.MoveError{Err: err, GameID: g.id, Ply: len(g.history) + 1, MoveText: s}
		}
	}
	return nil
}

func (g *Game) playOne(s string) error {
	switch {
	case g.result.IsOver():
		return errors.ErrGameOver
	case g.IsNavigating():
		return errors.ErrNavigating
	case g.IsPromoting():
		return errors.ErrPromotionPending
	}

	m, err := engine.ParseUCIMove(s)
	if err != nil {
		return err
	}
	if m.Promotion != chess.NoKind && !engine.IsPromotionMove(g.pos.Board, m.From, m.To) {
		return errors.ErrInvalidPromotion
	}

	if !g.SelectPiece(m.From) {
		return errors.ErrIllegalMove
	}
	if !g.MovePiece(m.To) {
		g.Deselect()
		return errors.ErrIllegalMove
	}
	if m.Promotion != chess.NoKind && !g.CompletePromotion(m.Promotion) {
		return errors.ErrInvalidPromotion
	}
	return nil
}
