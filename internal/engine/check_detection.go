package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// WouldLeaveOwnKingInCheck relocates the single piece on from to to on a
// copy of the board and reports whether colour's king is then attacked.
// Castling and en passant side effects are not applied. The caller's board
// is never modified.
func WouldLeaveOwnKingInCheck(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	sim := board.Copy()
	sim.Relocate(from, to)
	return IsInCheck(sim, colour)
}

