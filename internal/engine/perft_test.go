package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

var perftPositions = []struct {
	name  string
	fen   string
	nodes []uint64 // by depth, starting at 1
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			for i, want := range tt.nodes {
				depth := i + 1
				if depth == 3 && testing.Short() {
					break
				}
				if got := Perft(pos, depth); got != want {
					t.Errorf("Perft(depth %d) = %d, want %d", depth, got, want)
				}
			}
		})
	}

	t.Run("depth zero", func(t *testing.T) {
		testutil.AssertEqual(t, Perft(chess.NewPosition(), 0), uint64(1))
	})
}

func TestPerftDivide(t *testing.T) {
	pos := MustPositionFromFEN(perftPositions[1].fen)

	for _, workers := range []int{1, 4} {
		entries, total, err := PerftDivide(pos, 2, workers)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, total, uint64(2039))
		testutil.AssertEqual(t, len(entries), 48)

		var sum uint64
		for i, e := range entries {
			testutil.AssertEqual(t, e.Move, LegalMoves(pos)[i].String(), "entries follow generation order")
			sum += e.Nodes
		}
		testutil.AssertEqual(t, sum, total)
	}

	t.Run("depth zero", func(t *testing.T) {
		entries, total, err := PerftDivide(pos, 0, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(entries), 0)
		testutil.AssertEqual(t, total, uint64(1))
	})
}

// uciStrings returns the sorted UCI form of moves.
func uciStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// dragontoothMoves lists the legal moves dragontoothmg generates for fen.
func dragontoothMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestLegalMovesMatchDragontooth compares move generation with
// dragontoothmg two plies deep from every perft position.
func TestLegalMovesMatchDragontooth(t *testing.T) {
	var walk func(t *testing.T, pos *chess.Position, depth int)
	walk = func(t *testing.T, pos *chess.Position, depth int) {
		fen := PositionToFEN(pos)
		moves := LegalMoves(pos)
		got := uciStrings(moves)
		want := dragontoothMoves(fen)
		if len(got) == 0 && len(want) == 0 {
			return
		}
		testutil.AssertEqual(t, got, want, fen)
		if depth <= 1 {
			return
		}
		for _, m := range moves {
			walk(t, applyGenerated(pos, m), depth-1)
		}
	}

	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			walk(t, MustPositionFromFEN(tt.fen), 2)
		})
	}
}

// TestGameStateMatchesNotnil checks legal moves and terminal detection
// against notnil/chess.
func TestGameStateMatchesNotnil(t *testing.T) {
	fens := []string{
		InitialFEN,
		perftPositions[1].fen,
		perftPositions[3].fen,
		"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
		"k7/8/1Q6/8/8/8/8/7K b - - 0 1",
		"R3k3/8/4K3/8/8/8/8/8 b - - 0 1",
		"rnbqkbnr/1pppp1pp/p7/4Pp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			testutil.AssertNoError(t, err)
			game := nchess.NewGame(opt)

			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, m.String())
			}
			sort.Strings(want)

			pos := MustPositionFromFEN(fen)
			got := uciStrings(LegalMoves(pos))
			if len(got) != 0 || len(want) != 0 {
				testutil.AssertEqual(t, got, want)
			}

			status := game.Position().Status()
			testutil.AssertEqual(t, IsCheckmate(pos), status == nchess.Checkmate, "checkmate")
			testutil.AssertEqual(t, IsStalemate(pos), status == nchess.Stalemate, "stalemate")
		})
	}
}
