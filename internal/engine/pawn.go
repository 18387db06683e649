package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// PromotionChoices lists the kinds a pawn may promote to, strongest first.
var PromotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// CanEnPassant reports whether the pawn on from may capture en passant by
// moving to to. The opposing pawn beside from on to's file must have made
// a two-square push from lastDoublePawnMove on the previous ply.
func CanEnPassant(board *chess.Board, from, to chess.Square, lastDoublePawnMove *chess.Square) bool {
	if lastDoublePawnMove == nil || !from.Valid() || !to.Valid() {
		return false
	}

	pawn := board.Get(from)
	if pawn.Kind != chess.Pawn {
		return false
	}
	dir := chess.Forward(pawn.Colour)
	if to.Row-from.Row != dir || abs(to.Col-from.Col) != 1 || !board.IsEmpty(to) {
		return false
	}

	if !board.Get(enPassantVictim(from, to)).Is(pawn.Colour.Opposite(), chess.Pawn) {
		return false
	}

	return *lastDoublePawnMove == chess.Sq(from.Row+2*dir, to.Col)
}

// enPassantVictim returns the square of the pawn an en passant capture removes.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// enPassantDestinations returns the en passant captures available to the
// pawn on from that leave its king safe once the captured pawn is gone.
func enPassantDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	pawn := pos.Board.Get(from)
	if pawn.Kind != chess.Pawn {
		return nil
	}

	var dests []chess.Square
	for _, dCol := range []int{-1, 1} {
		to := from.Offset(chess.Forward(pawn.Colour), dCol)
		if !CanEnPassant(pos.Board, from, to, pos.LastDoublePawnMove) {
			continue
		}
		sim := pos.Board.Copy()
		sim.Clear(enPassantVictim(from, to))
		sim.Relocate(from, to)
		if !IsInCheck(sim, pawn.Colour) {
			dests = append(dests, to)
		}
	}
	return dests
}

// IsPromotionMove returns true if the move takes a pawn to its far rank.
func IsPromotionMove(board *chess.Board, from, to chess.Square) bool {
	pawn := board.Get(from)
	return pawn.Kind == chess.Pawn && to.Row == chess.PromotionRow(pawn.Colour)
}
