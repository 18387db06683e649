package engine

import (
	"sort"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// Move is a request to move the piece on From to To. Promotion names the
// kind a pawn reaching the far rank becomes; NoKind leaves the choice open.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String returns the move in UCI form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// IsPseudoLegal checks the move against bounds, ownership and the piece's
// movement shape. It does not consider the safety of the mover's king.
// The king's two-square castling step is not pseudo-legal; see CanCastle.
func IsPseudoLegal(board *chess.Board, from, to chess.Square, mover chess.Colour) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != mover {
		return false
	}

	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == mover {
		return false
	}

	return pieceCanMove(board, piece, from, to)
}

// IsFullyLegal returns true if the move is pseudo-legal and leaves the
// mover's king unattacked.
func IsFullyLegal(board *chess.Board, from, to chess.Square, mover chess.Colour) bool {
	return IsPseudoLegal(board, from, to, mover) && !WouldLeaveOwnKingInCheck(board, from, to, mover)
}

// LegalDestinations returns every square the piece on from may move to,
// including castling and en passant destinations, sorted rank 8 first.
// The piece's own colour is taken as the mover.
func LegalDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	mover := piece.Colour

	var dests []chess.Square
	for _, to := range candidateSquares(piece, from) {
		if IsFullyLegal(pos.Board, from, to, mover) {
			dests = append(dests, to)
		}
	}

	switch piece.Kind {
	case chess.King:
		dests = append(dests, CastlingDestinations(pos.Board, from)...)
	case chess.Pawn:
		dests = append(dests, enPassantDestinations(pos, from)...)
	}

	sort.Slice(dests, func(i, j int) bool {
		if dests[i].Row != dests[j].Row {
			return dests[i].Row < dests[j].Row
		}
		return dests[i].Col < dests[j].Col
	})
	return dests
}

// IsLegalDestination returns true if to is among LegalDestinations(pos, from).
func IsLegalDestination(pos *chess.Position, from, to chess.Square) bool {
	for _, sq := range LegalDestinations(pos, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := pos.Board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if len(LegalDestinations(pos, from)) > 0 {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for the side to move. A pawn
// reaching the far rank yields one move per promotion choice.
func LegalMoves(pos *chess.Position) []Move {
	var moves []Move
	pos.Board.ForEach(func(from chess.Square, piece chess.Piece) {
		if piece.Colour != pos.ToMove {
			return
		}
		for _, to := range LegalDestinations(pos, from) {
			if IsPromotionMove(pos.Board, from, to) {
				for _, kind := range PromotionChoices {
					moves = append(moves, Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	})
	return moves
}
