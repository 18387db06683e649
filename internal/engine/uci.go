package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// ParseUCIMove parses a move in UCI long algebraic form: "e2e4", or
// "e7e8q" for a promotion. Castling is written as the king's move ("e1g1").
func ParseUCIMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}

	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = chess.KindFromLetter(s[4])
		if !m.Promotion.IsPromotionChoice() {
			return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPromotion)
		}
	}
	return m, nil
}
