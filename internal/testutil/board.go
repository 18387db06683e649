package testutil

import (
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// MustBoard builds a board from eight diagram rows, rank 8 first, one FEN
// letter or '.' per square:
//
//	MustBoard(t,
//		"....k...",
//		"........",
//		...
//		"....K..R")
//
// Pieces off their starting squares are marked as moved. It calls t.Fatal
// on a malformed diagram.
func MustBoard(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	start := chess.NewInitialBoard()
	board := chess.NewBoard()
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d is %q; want %d squares", row, line, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("diagram row %d has invalid piece %q", row, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			sq := chess.Sq(row, col)
			piece := chess.NewPiece(colour, kind)
			piece.HasMoved = start.Get(sq) != piece
			board.Set(sq, piece)
		}
	}
	return board
}

// Squares parses algebraic square names, calling t.Fatal on a bad name.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			t.Fatalf("invalid square %q", name)
		}
		squares = append(squares, sq)
	}
	return squares
}

// SquareNames renders squares in algebraic notation for readable diffs.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}
