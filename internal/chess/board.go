package chess

import "strings"

// Board is the 8x8 grid of pieces.
type Board struct {
	// Squares is indexed [row][col].
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BackRow(Black)][col] = B(backRank[col])
		b.Squares[PawnRow(Black)][col] = B(Pawn)
		b.Squares[PawnRow(White)][col] = W(Pawn)
		b.Squares[BackRow(White)][col] = W(backRank[col])
	}
}

// Get returns the piece at the given square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Relocate moves whatever stands on from to to, clearing from.
// No rules are applied.
func (b *Board) Relocate(from, to Square) {
	if !from.Valid() || !to.Valid() {
		return
	}
	b.Set(to, b.Get(from))
	b.Clear(from)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of pieces of the given colour on the board.
func (b *Board) Count(colour Colour) int {
	n := 0
	b.ForEach(func(_ Square, p Piece) {
		if p.Colour == colour {
			n++
		}
	})
	return n
}

// ForEach calls fn for every occupied square in row-major order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// Signature returns the canonical placement signature: one FEN letter per
// square (or '.') in row-major order. HasMoved does not take part.
func (b *Board) Signature() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
	}
	return sb.String()
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	sig := b.Signature()
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteString(sig[row*BoardSize : (row+1)*BoardSize])
		sb.WriteByte('\n')
	}
	return sb.String()
}
