package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.NewInitialBoard(), false))

	want := strings.Join([]string{
		"  +-----------------+",
		"8 | r n b q k b n r |",
		"7 | p p p p p p p p |",
		"6 | . . . . . . . . |",
		"5 | . . . . . . . . |",
		"4 | . . . . . . . . |",
		"3 | . . . . . . . . |",
		"2 | P P P P P P P P |",
		"1 | R N B Q K B N R |",
		"  +-----------------+",
		"    a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestMoveWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMoveWriter(&buf, 10)
	mw.Write("abcde")
	mw.Write("fghij")
	mw.Write("k")
	mw.NewLine()
	mw.Write("l")

	testutil.AssertEqual(t, buf.String(), "abcde\nfghij k\nl")
}

func TestWriteMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		format config.OutputFormat
		want   string
	}{
		{"long algebraic", "", []string{"e2e4", "d7d5", "e4d5"}, config.HALG, "1. e2-e4 d7-d5 2. e4xd5\n"},
		{"uci", "", []string{"e2e4", "d7d5", "e4d5"}, config.UCI, "1. e2e4 d7d5 2. e4d5\n"},
		{"black first", "4k3/8/8/8/8/8/8/R3K3 b - - 0 10", []string{"e8d8", "a1a2"}, config.HALG, "10... Ke8-d8 11. Ra1-a2\n"},
		{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e8c8"}, config.HALG, "1. O-O O-O-O\n"},
		{"no moves", "", nil, config.HALG, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playedGame(t, tt.fen, tt.moves...)
			start := engine.MustPositionFromFEN(g.StartFEN())

			var buf bytes.Buffer
			WriteMoves(&buf, start, g.Records(), tt.format)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"start", "", nil, "White to move"},
		{"check", "", []string{"e2e4", "d7d6", "f1b5"}, "Black to move (check)"},
		{"checkmate", "", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, "Black wins by checkmate"},
		{"promotion pending", "8/4P3/8/8/8/8/8/k3K3 w - - 0 1", []string{"e7e8"}, "White to choose a promotion piece"},
		{"stalemate", "k7/8/2Q5/8/8/8/8/7K w - - 0 1", []string{"c6b6"}, "Draw (Stalemate)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playedGame(t, tt.fen, tt.moves...)
			testutil.AssertEqual(t, Status(g), tt.want)
		})
	}
}

func TestWriteGameWithBoard(t *testing.T) {
	g := playedGame(t, "k7/4P3/1K6/8/8/8/8/8 w - - 0 1", "e7e8q")
	cfg := config.NewOutputConfig()
	cfg.Color = false

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteGame(&buf, g, cfg))

	out := buf.String()
	testutil.AssertContains(t, out, "Start: k7/4P3/1K6/8/8/8/8/8 w - - 0 1\n")
	testutil.AssertContains(t, out, "8 | k . . . Q . . . |\n")
	testutil.AssertContains(t, out, "1. e7-e8=Q\n")
	testutil.AssertContains(t, out, "Status: White wins by checkmate\n")
	testutil.AssertContains(t, out, "Result: 1-0\n")
}

func TestGameToJSONSpecialMoves(t *testing.T) {
	t.Run("en passant", func(t *testing.T) {
		g := playedGame(t, "", "e2e4", "a7a6", "e4e5", "f7f5", "e5f6")
		jg, err := GameToJSON(g, nil)
		testutil.AssertNoError(t, err)

		ep := jg.Moves[4]
		testutil.AssertTrue(t, ep.EnPassant)
		testutil.AssertEqual(t, ep.Captured, "pawn")
		testutil.AssertEqual(t, ep.Move, "e5xf6 e.p.")
		testutil.AssertEqual(t, ep.MoveNumber, 3)
	})

	t.Run("pending promotion has no FEN yet", func(t *testing.T) {
		g := playedGame(t, "8/4P3/8/8/8/8/8/k3K3 w - - 0 1", "e7e8")
		jg, err := GameToJSON(g, nil)
		testutil.AssertNoError(t, err)

		testutil.AssertTrue(t, jg.Promoting)
		testutil.AssertEqual(t, jg.InitialFEN, "8/4P3/8/8/8/8/8/k3K3 w - - 0 1")
		testutil.AssertEqual(t, jg.Moves[0].FEN, "")
		testutil.AssertEqual(t, jg.Moves[0].Promotion, "")
		testutil.AssertEqual(t, jg.ToMove, "white")
	})

	t.Run("completed promotion", func(t *testing.T) {
		g := playedGame(t, "8/4P3/8/8/8/8/8/k3K3 w - - 0 1", "e7e8n")
		jg, err := GameToJSON(g, nil)
		testutil.AssertNoError(t, err)

		testutil.AssertEqual(t, jg.Moves[0].Promotion, "knight")
		testutil.AssertEqual(t, jg.Moves[0].FEN, "4N3/8/8/8/8/8/8/k3K3 b - - 0 1")
		testutil.AssertEqual(t, jg.Result, "1/2-1/2")
	})

	t.Run("round trips through encoding/json", func(t *testing.T) {
		g := playedGame(t, "", "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
		jg, err := GameToJSON(g, nil)
		testutil.AssertNoError(t, err)

		var buf bytes.Buffer
		testutil.AssertNoError(t, encodeJSON(&buf, jg))
		var back JSONGame
		testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &back))
		testutil.AssertEqual(t, &back, jg)
		testutil.AssertTrue(t, back.Check)
		testutil.AssertEqual(t, back.Result, "1-0")
	})
}
