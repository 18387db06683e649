package hashing

import (
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

// play applies UCI moves from pos and returns every position reached.
func play(t *testing.T, pos *chess.Position, moves ...string) []*chess.Position {
	t.Helper()
	positions := []*chess.Position{pos}
	for _, s := range moves {
		m, err := engine.ParseUCIMove(s)
		testutil.AssertNoError(t, err)
		next, _, err := engine.ApplyMove(pos, m)
		if err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", s, err)
		}
		pos = next
		positions = append(positions, pos)
	}
	return positions
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	board2 := chess.NewInitialBoard()
	board2.Relocate(chess.MustSquare("e2"), chess.MustSquare("e4"))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashIgnoresHasMoved(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()
	knight := board2.Get(chess.MustSquare("g1"))
	knight.HasMoved = true
	board2.Set(chess.MustSquare("g1"), knight)

	testutil.AssertEqual(t, GenerateZobristHash(board1), GenerateZobristHash(board2))
}

func TestPositionHashSideToMove(t *testing.T) {
	white := engine.MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	black := engine.MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")

	for _, strict := range []bool{false, true} {
		if PositionHash(white, strict) == PositionHash(black, strict) {
			t.Errorf("strict=%v: side to move does not change the hash", strict)
		}
	}
}

func TestPositionHashStrict(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		wantStrict bool
	}{
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", false},
		{"capturable en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2", false},
		{"uncapturable en passant", "4k3/8/8/3p4/8/8/8/4K3 w - d6 0 2", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := engine.MustPositionFromFEN(tt.a)
			b := engine.MustPositionFromFEN(tt.b)
			testutil.AssertEqual(t, PositionHash(a, false), PositionHash(b, false), "loose hashes")
			testutil.AssertEqual(t, PositionHash(a, true) == PositionHash(b, true), tt.wantStrict, "strict hashes equal")
		})
	}
}

func TestRepetitionTable(t *testing.T) {
	start := engine.MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	positions := play(t, start,
		"a1a2", "e8d8", "a2a1", "d8e8",
		"a1a2", "e8d8", "a2a1", "d8e8")

	table := NewRepetitionTable(false)
	var counts []int
	for _, pos := range positions {
		counts = append(counts, table.Add(pos))
	}

	testutil.AssertEqual(t, counts, []int{1, 1, 1, 1, 2, 2, 2, 2, 3})
	testutil.AssertEqual(t, table.Count(start), 3)
	testutil.AssertEqual(t, table.MaxCount(), 3)
	testutil.AssertEqual(t, table.UniqueCount(), 4)
	testutil.AssertFalse(t, table.Strict())

	table.Reset()
	testutil.AssertEqual(t, table.Count(start), 0)
	testutil.AssertEqual(t, table.MaxCount(), 0)
	testutil.AssertEqual(t, table.UniqueCount(), 0)
}

func TestRepetitionTableStrict(t *testing.T) {
	// The rooks shuffle back to their corners, but the castling rights are gone.
	start := engine.MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	positions := play(t, start, "h1h2", "h8h7", "h2h1", "h7h8")
	final := positions[len(positions)-1]

	loose := NewRepetitionTable(false)
	strict := NewRepetitionTable(true)
	for _, pos := range positions {
		loose.Add(pos)
		strict.Add(pos)
	}

	testutil.AssertEqual(t, loose.Count(final), 2)
	testutil.AssertEqual(t, strict.Count(final), 1)
	testutil.AssertEqual(t, strict.Count(start), 1)
}

func TestRepetitionTableCollision(t *testing.T) {
	table := NewRepetitionTable(false)
	a := engine.MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := engine.MustPositionFromFEN("4k3/8/8/8/8/8/8/1R2K3 w - - 0 1")

	// Force both positions into one bucket.
	hash := PositionHash(a, false)
	table.hashTable[hash] = append(table.hashTable[hash], PositionSignature{
		Hash:  hash,
		Key:   table.signature(b),
		Count: 5,
	})

	testutil.AssertEqual(t, table.Add(a), 1)
	testutil.AssertEqual(t, table.Count(a), 1)
	testutil.AssertEqual(t, len(table.hashTable[hash]), 2)
}
