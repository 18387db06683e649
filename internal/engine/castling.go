package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// Columns the king and rook land on after castling.
const (
	kingsideKingCol  = 6
	kingsideRookCol  = 5
	queensideKingCol = 2
	queensideRookCol = 3
)

// CanCastle reports whether colour may castle on the given side now.
// The king and rook must be unmoved on their home squares, the squares
// between them empty, and none of the squares the king stands on, passes
// through or lands on attacked by the opponent.
func CanCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !chess.HasCastlingRight(board, colour, kingside) {
		return false
	}

	row := chess.BackRow(colour)
	rookCol := chess.QueensideRookCol
	if kingside {
		rookCol = chess.KingsideRookCol
	}
	step := sign(rookCol - chess.KingCol)

	for col := chess.KingCol + step; col != rookCol; col += step {
		if !board.IsEmpty(chess.Sq(row, col)) {
			return false
		}
	}

	opponent := colour.Opposite()
	for i := 0; i <= 2; i++ {
		if IsSquareAttacked(board, chess.Sq(row, chess.KingCol+i*step), opponent) {
			return false
		}
	}

	return true
}

// CastlingDestinations returns the king destinations of every castle
// available to the king on from. Any other piece yields none.
func CastlingDestinations(board *chess.Board, from chess.Square) []chess.Square {
	king := board.Get(from)
	if king.Kind != chess.King || from != chess.Sq(chess.BackRow(king.Colour), chess.KingCol) {
		return nil
	}

	var dests []chess.Square
	if CanCastle(board, king.Colour, true) {
		dests = append(dests, chess.Sq(from.Row, kingsideKingCol))
	}
	if CanCastle(board, king.Colour, false) {
		dests = append(dests, chess.Sq(from.Row, queensideKingCol))
	}
	return dests
}

// IsCastlingMove returns true if the move is a king's two-square step
// from its home square.
func IsCastlingMove(board *chess.Board, from, to chess.Square) bool {
	king := board.Get(from)
	if king.Kind != chess.King {
		return false
	}
	return from == chess.Sq(chess.BackRow(king.Colour), chess.KingCol) &&
		to.Row == from.Row && abs(to.Col-from.Col) == 2
}

// castlingRookSquares returns where the rook starts and ends for a castle.
func castlingRookSquares(colour chess.Colour, kingside bool) (from, to chess.Square) {
	row := chess.BackRow(colour)
	if kingside {
		return chess.Sq(row, chess.KingsideRookCol), chess.Sq(row, kingsideRookCol)
	}
	return chess.Sq(row, chess.QueensideRookCol), chess.Sq(row, queensideRookCol)
}
