package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a row, a column or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// isStraight reports whether the squares share a row or a column.
func isStraight(from, to chess.Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

// isDiagonal reports whether the squares share a diagonal.
func isDiagonal(from, to chess.Square) bool {
	return abs(to.Row-from.Row) == abs(to.Col-from.Col)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
