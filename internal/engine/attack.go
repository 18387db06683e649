package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// Attacks reports whether the piece standing on from attacks to.
// Pawns attack one step diagonally forward only. Bishops, rooks and queens
// need every square strictly between the two to be empty.
func Attacks(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	return pieceAttacks(board, piece, from, to)
}

// IsSquareAttacked returns true if any piece of colour by attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != by {
				continue
			}
			if pieceAttacks(board, piece, chess.Sq(row, col), sq) {
				return true
			}
		}
	}
	return false
}
