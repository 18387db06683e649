package engine

import (
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// NotateLongAlgebraic formats a ply in hyphenated long algebraic notation:
// "Ng1-f3", "e4xd5", "e5xf6 e.p.", "O-O", "O-O-O" or "e7-e8=Q".
func NotateLongAlgebraic(rec chess.MoveRecord) string {
	if rec.IsCastling {
		if rec.IsKingside() {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if rec.Piece.Kind != chess.Pawn {
		sb.WriteByte(rec.Piece.Kind.Letter())
	}

	sb.WriteString(rec.From.String())
	if rec.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(rec.To.String())

	if rec.IsPromotion && rec.PromotedTo != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(rec.PromotedTo.Letter())
	}

	if rec.IsEnPassant {
		sb.WriteString(" e.p.")
	}

	return sb.String()
}

// NotateUCI formats a ply in UCI notation, e.g. "e1g1" or "e7e8q".
func NotateUCI(rec chess.MoveRecord) string {
	return Move{From: rec.From, To: rec.To, Promotion: rec.PromotedTo}.String()
}
