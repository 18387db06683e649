package chess

// MoveRecord describes one completed ply. Records are immutable once they
// have been appended to a game's history.
type MoveRecord struct {
	From Square
	To   Square

	// The piece as it stood on From before the move.
	Piece Piece

	// The piece captured, or the empty Piece. For en passant this is the
	// pawn removed from beside the destination square.
	Captured Piece

	IsCastling  bool
	IsEnPassant bool
	IsPromotion bool

	// The kind the pawn became (NoKind unless IsPromotion).
	PromotedTo Kind

	// Who made the move.
	Mover Colour
}

// IsCapture returns true if this move captured a piece.
func (m MoveRecord) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsKingside reports whether a castling move went toward the h-file.
func (m MoveRecord) IsKingside() bool {
	return m.IsCastling && m.To.Col > m.From.Col
}

// IsDoublePawnPush reports whether the move was a two-square pawn advance.
func (m MoveRecord) IsDoublePawnPush() bool {
	if m.Piece.Kind != Pawn {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// IsIrreversible reports whether the move resets the half-move clock.
func (m MoveRecord) IsIrreversible() bool {
	return m.Piece.Kind == Pawn || m.IsCapture()
}
