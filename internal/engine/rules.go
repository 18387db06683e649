// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// Standard draw thresholds.
const (
	DefaultRepetitionThreshold = 3
	DefaultHalfMoveLimit       = 100
)

// IsFiftyMoveRule returns true once the half-move clock reaches limit.
// A non-positive limit means DefaultHalfMoveLimit.
func IsFiftyMoveRule(halfMoveClock, limit int) bool {
	if limit <= 0 {
		limit = DefaultHalfMoveLimit
	}
	return halfMoveClock >= limit
}

// HasInsufficientMaterial returns true if neither side has a pawn, rook
// or queen and each side has at most one minor piece.
// Insufficient material includes:
// - K vs K
// - K+B vs K, K+N vs K
// - K+B vs K+B, K+N vs K+B, K+N vs K+N
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2]int

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			switch piece.Kind {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop, chess.Knight:
				minors[piece.Colour]++
				if minors[piece.Colour] > 1 {
					return false
				}
			}
		}
	}

	return true
}

// HasMaterialOdds reports whether either side's material differs from the
// standard starting set.
func HasMaterialOdds(board *chess.Board) bool {
	return !isStandardMaterial(board)
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	// Standard material: 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2]map[chess.Kind]int
	actual[chess.White] = make(map[chess.Kind]int)
	actual[chess.Black] = make(map[chess.Kind]int)
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		actual[p.Colour][p.Kind]++
	})

	for _, counts := range actual {
		for kind, want := range expected {
			if counts[kind] != want {
				return false
			}
		}
	}

	return true
}

// moveError attaches ply context to a replay failure.
func moveError(err error, ply int, rec chess.MoveRecord) error {
	return &errors.MoveError{Err: err, Ply: ply, MoveText: NotateUCI(rec)}
}
