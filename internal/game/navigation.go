package game

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

// cursor returns how many plies of the history are on display.
func (g *Game) cursor() int {
	if r, ok := g.turn.(reviewing); ok {
		return r.cursor
	}
	return len(g.history)
}

// IsNavigating reports whether history is being reviewed.
func (g *Game) IsNavigating() bool {
	_, ok := g.turn.(reviewing)
	return ok
}

// CurrentMoveNumber returns how many plies the displayed position is into
// the game.
func (g *Game) CurrentMoveNumber() int {
	return g.cursor()
}

// CanGoBack reports whether an earlier position can be shown.
func (g *Game) CanGoBack() bool {
	return !g.IsPromoting() && g.cursor() > 0
}

// CanGoForward reports whether a later position can be shown.
func (g *Game) CanGoForward() bool {
	return g.IsNavigating() && g.cursor() < len(g.history)
}

// GoBack shows the position one ply earlier, entering review if needed.
func (g *Game) GoBack() bool {
	if !g.CanGoBack() {
		return false
	}
	return g.review(g.cursor() - 1)
}

// GoForward shows the position one ply later.
func (g *Game) GoForward() bool {
	if !g.CanGoForward() {
		return false
	}
	return g.review(g.cursor() + 1)
}

// review replays the first n plies from the start position and shows the
// result. The history, live position and result are left alone.
func (g *Game) review(n int) bool {
	pos, err := g.replay(n)
	if err != nil {
		g.logger.Error("history replay failed", zap.Int("cursor", n), zap.Error(err))
		return false
	}
	g.selected = nil
	g.turn = reviewing{cursor: n, pos: pos}
	g.logger.Debug("reviewing", zap.Int("cursor", n), zap.Int("plies", len(g.history)))
	return true
}

// ExitNavigation leaves review and restores the live position by
// replaying the whole history.
func (g *Game) ExitNavigation() {
	if !g.IsNavigating() {
		return
	}

	pos, err := g.replay(len(g.history))
	if err != nil {
		// The live position is still intact; keep a copy of it.
		g.logger.Error("history replay failed", zap.Error(err))
		pos = g.pos.Copy()
	}
	pos.ToMove = g.start.ToMove
	if g.completedPlies()%2 == 1 {
		pos.ToMove = g.start.ToMove.Opposite()
	}

	g.pos = pos
	g.turn = normalTurn{}
	g.logger.Debug("navigation exited", zap.Int("plies", len(g.history)))
}

// ReviewPosition returns a copy of the displayed position.
func (g *Game) ReviewPosition() *chess.Position {
	return g.displayed().Copy()
}

// replay rebuilds the position after the first n plies. A final ply whose
// promotion was never chosen, left behind when the game ended while it was
// pending, is replayed with the pawn still on the last rank.
func (g *Game) replay(n int) (*chess.Position, error) {
	plies := g.history[:n]
	if n == 0 || !unchosenPromotion(plies[n-1]) {
		return engine.Replay(g.start, plies)
	}

	pos, err := engine.Replay(g.start, plies[:n-1])
	if err != nil {
		return nil, err
	}
	last := plies[n-1]
	next, _, err := engine.ApplyMove(pos, engine.Move{From: last.From, To: last.To})
	return next, err
}

// completedPlies counts the plies that handed the move to the other side.
func (g *Game) completedPlies() int {
	n := len(g.history)
	if n > 0 && unchosenPromotion(g.history[n-1]) {
		n--
	}
	return n
}

func unchosenPromotion(rec chess.MoveRecord) bool {
	return rec.IsPromotion && rec.PromotedTo == chess.NoKind
}
