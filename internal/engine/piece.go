package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// Jump offsets as {row, col} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pieceAttacks reports whether piece, standing on from, attacks to.
// Occupancy of to is not considered.
func pieceAttacks(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if rowDiff == 0 && colDiff == 0 {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return to.Row-from.Row == chess.Forward(piece.Colour) && colDiff == 1

	case chess.Knight:
		return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)

	case chess.Bishop:
		return isDiagonal(from, to) && isPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && isPathClear(board, from, to)

	case chess.Queen:
		return (isDiagonal(from, to) || isStraight(from, to)) && isPathClear(board, from, to)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}

// pieceCanMove checks the movement shape of piece from one square to
// another. Every kind but the pawn moves the way it attacks. Castling and
// en passant are not covered here.
func pieceCanMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if piece.Kind != chess.Pawn {
		return pieceAttacks(board, piece, from, to)
	}

	dir := chess.Forward(piece.Colour)
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col

	switch {
	case dCol == 0 && dRow == dir:
		return board.IsEmpty(to)

	case dCol == 0 && dRow == 2*dir:
		return from.Row == chess.PawnRow(piece.Colour) &&
			board.IsEmpty(from.Offset(dir, 0)) &&
			board.IsEmpty(to)

	case abs(dCol) == 1 && dRow == dir:
		target := board.Get(to)
		return !target.IsEmpty() && target.Colour != piece.Colour
	}

	return false
}

// candidateSquares returns the squares a piece on from could possibly reach,
// ignoring occupancy and checks. It keeps move enumeration away from
// scanning all 64 squares for the short-range kinds.
func candidateSquares(piece chess.Piece, from chess.Square) []chess.Square {
	var squares []chess.Square
	add := func(sq chess.Square) {
		if sq.Valid() {
			squares = append(squares, sq)
		}
	}

	switch piece.Kind {
	case chess.Pawn:
		dir := chess.Forward(piece.Colour)
		add(from.Offset(dir, -1))
		add(from.Offset(dir, 0))
		add(from.Offset(dir, 1))
		add(from.Offset(2*dir, 0))

	case chess.Knight:
		for _, off := range knightOffsets {
			add(from.Offset(off[0], off[1]))
		}

	case chess.King:
		for _, off := range kingOffsets {
			add(from.Offset(off[0], off[1]))
		}

	default:
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				add(chess.Sq(row, col))
			}
		}
	}

	return squares
}
