package chess

// Position is a board together with the state needed to continue play from it.
type Position struct {
	Board *Board

	// Who has the next move.
	ToMove Colour

	// Origin square of the most recent two-square pawn push. Only valid for
	// the ply immediately following that push; nil otherwise.
	LastDoublePawnMove *Square

	// The half-move clock since the last pawn move or capture.
	HalfMoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	FullMoveNumber int
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	return &Position{
		Board:          NewInitialBoard(),
		ToMove:         White,
		FullMoveNumber: 1,
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	np := &Position{
		Board:          p.Board.Copy(),
		ToMove:         p.ToMove,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}
	if p.LastDoublePawnMove != nil {
		sq := *p.LastDoublePawnMove
		np.LastDoublePawnMove = &sq
	}
	return np
}

// CastlingRights reports which castles are still available in principle:
// king and rook unmoved on their home squares. Attack and occupancy
// conditions are not considered.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any reports whether any right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// Rights derives castling rights from the HasMoved flags on the board.
func (p *Position) Rights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  HasCastlingRight(p.Board, White, true),
		WhiteQueenside: HasCastlingRight(p.Board, White, false),
		BlackKingside:  HasCastlingRight(p.Board, Black, true),
		BlackQueenside: HasCastlingRight(p.Board, Black, false),
	}
}

// King and rook home columns.
const (
	KingCol          = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
)

// HasCastlingRight reports whether the king and the relevant rook are both on
// their home squares and have never moved.
func HasCastlingRight(b *Board, colour Colour, kingside bool) bool {
	row := BackRow(colour)
	king := b.Get(Square{Row: row, Col: KingCol})
	if !king.Is(colour, King) || king.HasMoved {
		return false
	}
	rookCol := QueensideRookCol
	if kingside {
		rookCol = KingsideRookCol
	}
	rook := b.Get(Square{Row: row, Col: rookCol})
	return rook.Is(colour, Rook) && !rook.HasMoved
}
