package engine

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// ApplyMove plays a legal move for the side to move and returns the
// resulting position together with the record of the ply. pos is not
// modified.
//
// A pawn reaching the far rank with m.Promotion == NoKind stays a pawn on
// the promotion square and the turn is not handed over: the returned
// position still has the mover to play until CompletePromotion is called.
// The returned record then has IsPromotion set and PromotedTo empty.
func ApplyMove(pos *chess.Position, m Move) (*chess.Position, chess.MoveRecord, error) {
	piece := pos.Board.Get(m.From)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return nil, chess.MoveRecord{}, fmt.Errorf("%s: no %s piece on %s: %w",
			m, pos.ToMove, m.From, errors.ErrIllegalMove)
	}
	if !IsLegalDestination(pos, m.From, m.To) {
		return nil, chess.MoveRecord{}, fmt.Errorf("%s: %w", m, errors.ErrIllegalMove)
	}

	promoting := IsPromotionMove(pos.Board, m.From, m.To)
	if m.Promotion != chess.NoKind && (!promoting || !m.Promotion.IsPromotionChoice()) {
		return nil, chess.MoveRecord{}, fmt.Errorf("%s: %w", m, errors.ErrInvalidPromotion)
	}

	next, rec := applyUnchecked(pos, m.From, m.To)
	if promoting && m.Promotion != chess.NoKind {
		var err error
		if next, err = CompletePromotion(next, m.To, m.Promotion); err != nil {
			return nil, chess.MoveRecord{}, err
		}
		rec.PromotedTo = m.Promotion
	}

	return next, rec, nil
}

// applyUnchecked performs the move on a copy of pos without validating it.
// Castling moves the rook in the same ply; en passant removes the pawn that
// made the double push.
func applyUnchecked(pos *chess.Position, from, to chess.Square) (*chess.Position, chess.MoveRecord) {
	next := pos.Copy()
	board := next.Board
	piece := board.Get(from)

	rec := chess.MoveRecord{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
		Mover:    piece.Colour,
	}

	switch {
	case IsCastlingMove(board, from, to):
		rec.IsCastling = true
		rookFrom, rookTo := castlingRookSquares(piece.Colour, to.Col > from.Col)
		movePiece(board, rookFrom, rookTo)

	case CanEnPassant(board, from, to, pos.LastDoublePawnMove):
		rec.IsEnPassant = true
		victim := enPassantVictim(from, to)
		rec.Captured = board.Get(victim)
		board.Clear(victim)
	}

	movePiece(board, from, to)
	rec.IsPromotion = piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)

	next.LastDoublePawnMove = nil
	if rec.IsDoublePawnPush() {
		origin := from
		next.LastDoublePawnMove = &origin
	}

	if rec.IsIrreversible() {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}

	if !rec.IsPromotion {
		finishTurn(next)
	}

	return next, rec
}

// movePiece relocates a piece and marks it as having moved.
func movePiece(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	piece.HasMoved = true
	board.Clear(from)
	board.Set(to, piece)
}

// finishTurn hands the move to the other side.
func finishTurn(pos *chess.Position) {
	if pos.ToMove == chess.Black {
		pos.FullMoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()
}

// CompletePromotion replaces the side to move's pawn on sq with a piece of
// the chosen kind and hands the move to the other side.
func CompletePromotion(pos *chess.Position, sq chess.Square, kind chess.Kind) (*chess.Position, error) {
	if !kind.IsPromotionChoice() {
		return nil, fmt.Errorf("promote to %s: %w", kind, errors.ErrInvalidPromotion)
	}

	pawn := pos.Board.Get(sq)
	if !pawn.Is(pos.ToMove, chess.Pawn) || sq.Row != chess.PromotionRow(pawn.Colour) {
		return nil, fmt.Errorf("promote on %s: %w", sq, errors.ErrNoPromotionPending)
	}

	next := pos.Copy()
	next.Board.Set(sq, chess.Piece{Colour: pawn.Colour, Kind: kind, HasMoved: true})
	finishTurn(next)
	return next, nil
}

// ReplayRecord re-applies a recorded ply to pos. Records of promotions
// must carry PromotedTo.
func ReplayRecord(pos *chess.Position, rec chess.MoveRecord) (*chess.Position, error) {
	if rec.IsPromotion && rec.PromotedTo == chess.NoKind {
		return nil, fmt.Errorf("replay %s%s: %w", rec.From, rec.To, errors.ErrNoPromotionPending)
	}
	next, _, err := ApplyMove(pos, Move{From: rec.From, To: rec.To, Promotion: rec.PromotedTo})
	return next, err
}

// Replay applies records in order starting from start and returns the
// final position.
func Replay(start *chess.Position, records []chess.MoveRecord) (*chess.Position, error) {
	pos := start.Copy()
	for i, rec := range records {
		next, err := ReplayRecord(pos, rec)
		if err != nil {
			return nil, moveError(err, i+1, rec)
		}
		pos = next
	}
	return pos, nil
}
