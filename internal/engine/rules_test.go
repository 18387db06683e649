package engine

import (
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", true},
		{"minor against minor", "2b1k3/8/8/8/8/8/8/1N2K3 w - - 0 1", true},
		{"bishop against bishop", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"two knights", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"two bishops", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"lone pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"lone rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"lone queen", "3qk3/8/8/8/8/8/8/4K3 w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			if got := HasInsufficientMaterial(pos.Board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFiftyMoveRule(t *testing.T) {
	tests := []struct {
		clock, limit int
		want         bool
	}{
		{99, 100, false},
		{100, 100, true},
		{101, 100, true},
		{100, 0, true},
		{99, -1, false},
		{10, 10, true},
	}

	for _, tt := range tests {
		if got := IsFiftyMoveRule(tt.clock, tt.limit); got != tt.want {
			t.Errorf("IsFiftyMoveRule(%d, %d) = %v, want %v", tt.clock, tt.limit, got, tt.want)
		}
	}
}

func TestAdjudicate(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		repetitions int
		rules       DrawRules
		want        chess.Result
	}{
		{"game continues", InitialFEN, 1, DefaultDrawRules(), chess.Result{}},
		{"checkmate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", 1, DefaultDrawRules(), chess.WinFor(chess.White)},
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", 1, DefaultDrawRules(), chess.DrawBy(chess.Stalemate)},
		{"repetition", InitialFEN, 3, DefaultDrawRules(), chess.DrawBy(chess.ThreefoldRepetition)},
		{"custom repetition threshold", InitialFEN, 2, DrawRules{RepetitionThreshold: 2}, chess.DrawBy(chess.ThreefoldRepetition)},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", 1, DefaultDrawRules(), chess.DrawBy(chess.FiftyMoveRule)},
		{"fifty moves not reached", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", 1, DefaultDrawRules(), chess.Result{}},
		{"insufficient material", "4k3/8/8/8/8/8/8/2B1K3 b - - 0 1", 1, DefaultDrawRules(), chess.DrawBy(chess.InsufficientMaterial)},
		{"checkmate beats the clock", "R3k3/8/4K3/8/8/8/8/8 b - - 100 70", 3, DefaultDrawRules(), chess.WinFor(chess.White)},
		{"repetition beats the clock", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", 3, DefaultDrawRules(), chess.DrawBy(chess.ThreefoldRepetition)},
		{"clock beats material", "4k3/8/8/8/8/8/8/4K3 w - - 100 80", 1, DefaultDrawRules(), chess.DrawBy(chess.FiftyMoveRule)},
		{"zero rules use defaults", InitialFEN, 2, DrawRules{}, chess.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjudicate(MustPositionFromFEN(tt.fen), tt.repetitions, tt.rules)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	mate := MustPositionFromFEN("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	stale := MustPositionFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	testutil.AssertTrue(t, IsCheckmate(mate), "mate")
	testutil.AssertFalse(t, IsStalemate(mate), "mate is not stalemate")
	testutil.AssertTrue(t, IsStalemate(stale), "stalemate")
	testutil.AssertFalse(t, IsCheckmate(stale), "stalemate is not mate")
	testutil.AssertFalse(t, IsCheckmate(chess.NewPosition()), "initial")
}
