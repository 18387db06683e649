package engine

import (
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

const castlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

// TestCanCastle flips each castling condition in turn.
func TestCanCastle(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		setup    func(b *chess.Board)
		kingside bool
		want     bool
	}{
		{"kingside available", castlingFEN, nil, true, true},
		{"queenside available", castlingFEN, nil, false, true},
		{"king has moved", castlingFEN, func(b *chess.Board) {
			king := b.Get(sq("e1"))
			king.HasMoved = true
			b.Set(sq("e1"), king)
		}, true, false},
		{"kingside rook has moved", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", nil, true, false},
		{"queenside rook gone", "r3k2r/8/8/8/8/8/8/4K2R w Kkq - 0 1", nil, false, false},
		{"path blocked", "r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1", nil, true, false},
		{"queenside blocked on b1", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", nil, false, false},
		{"transit square attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", nil, true, false},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", nil, true, false},
		{"king in check", "r3k2r/4r3/8/8/8/8/8/R3K2R w KQkq - 0 1", nil, true, false},
		{"attacked b1 does not matter", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", nil, false, true},
		{"king off its home square", "r3k2r/8/8/8/8/8/8/R4K1R w - - 0 1", nil, true, false},
		{"rook replaced by another piece", castlingFEN, func(b *chess.Board) {
			b.Set(sq("h1"), chess.W(chess.Queen))
		}, true, false},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			if tt.setup != nil {
				tt.setup(pos.Board)
			}
			if got := CanCastle(pos.Board, pos.ToMove, tt.kingside); got != tt.want {
				t.Errorf("CanCastle(%s, kingside=%v) = %v, want %v\n%s", pos.ToMove, tt.kingside, got, tt.want, pos.Board)
			}
		})
	}
}

func TestCastlingExecution(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		wantFEN string
		king    string
		rook    string
		notated string
	}{
		{"white kingside", "e1g1", "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", "g1", "f1", "O-O"},
		{"white queenside", "e1c1", "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1", "c1", "d1", "O-O-O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, records := playUCI(t, MustPositionFromFEN(castlingFEN), tt.move)
			rec := records[0]

			testutil.AssertTrue(t, rec.IsCastling, "IsCastling")
			testutil.AssertEqual(t, PositionToFEN(pos), tt.wantFEN)
			testutil.AssertEqual(t, pos.Board.Get(sq(tt.king)), chess.Piece{Colour: chess.White, Kind: chess.King, HasMoved: true})
			testutil.AssertEqual(t, pos.Board.Get(sq(tt.rook)), chess.Piece{Colour: chess.White, Kind: chess.Rook, HasMoved: true})
			testutil.AssertEqual(t, NotateLongAlgebraic(rec), tt.notated)
		})
	}
}

func TestCanEnPassant(t *testing.T) {
	// 1.e4 a6 2.e5 f5
	start, _ := playUCI(t, chess.NewPosition(), "e2e4", "a7a6", "e4e5", "f7f5")

	t.Run("available right after the double push", func(t *testing.T) {
		testutil.AssertTrue(t, CanEnPassant(start.Board, sq("e5"), sq("f6"), start.LastDoublePawnMove))
	})

	t.Run("wrong file", func(t *testing.T) {
		testutil.AssertFalse(t, CanEnPassant(start.Board, sq("e5"), sq("d6"), start.LastDoublePawnMove))
	})

	t.Run("no double push recorded", func(t *testing.T) {
		testutil.AssertFalse(t, CanEnPassant(start.Board, sq("e5"), sq("f6"), nil))
	})

	t.Run("window closes after one ply", func(t *testing.T) {
		pos, _ := playUCI(t, start, "g1f3", "a6a5")
		if pos.LastDoublePawnMove != nil {
			t.Fatalf("LastDoublePawnMove = %v, want nil", pos.LastDoublePawnMove)
		}
		testutil.AssertFalse(t, CanEnPassant(pos.Board, sq("e5"), sq("f6"), pos.LastDoublePawnMove))
		testutil.AssertFalse(t, IsLegalDestination(pos, sq("e5"), sq("f6")))
	})

	t.Run("single pushes do not open the window", func(t *testing.T) {
		pos, _ := playUCI(t, chess.NewPosition(), "e2e4", "f7f6", "e4e5", "f6f5")
		testutil.AssertFalse(t, CanEnPassant(pos.Board, sq("e5"), sq("f6"), pos.LastDoublePawnMove))
	})
}

func TestEnPassantExecution(t *testing.T) {
	// 1.e4 a6 2.e5 f5 3.exf6
	pos, records := playUCI(t, chess.NewPosition(), "e2e4", "a7a6", "e4e5", "f7f5", "e5f6")
	rec := records[len(records)-1]

	testutil.AssertTrue(t, rec.IsEnPassant, "IsEnPassant")
	testutil.AssertTrue(t, rec.IsCapture(), "IsCapture")
	testutil.AssertEqual(t, rec.Captured, chess.Piece{Colour: chess.Black, Kind: chess.Pawn, HasMoved: true})
	testutil.AssertTrue(t, pos.Board.IsEmpty(sq("f5")), "f5 must be empty")
	testutil.AssertTrue(t, pos.Board.IsEmpty(sq("e5")), "e5 must be empty")
	testutil.AssertEqual(t, pos.Board.Get(sq("f6")).Kind, chess.Pawn)
	testutil.AssertEqual(t, pos.Board.Get(sq("f6")).Colour, chess.White)
	testutil.AssertEqual(t, NotateLongAlgebraic(rec), "e5xf6 e.p.")
	testutil.AssertEqual(t, pos.HalfMoveClock, 0)
}

func TestPromotion(t *testing.T) {
	const fen = "8/4P3/8/8/8/8/8/k3K3 w - - 0 1"

	t.Run("two phase", func(t *testing.T) {
		pos := MustPositionFromFEN(fen)
		pending, rec, err := ApplyMove(pos, Move{From: sq("e7"), To: sq("e8")})
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, rec.IsPromotion, "IsPromotion")
		testutil.AssertEqual(t, rec.PromotedTo, chess.NoKind)
		testutil.AssertEqual(t, pending.ToMove, chess.White, "turn is not handed over yet")
		testutil.AssertEqual(t, pending.Board.Get(sq("e8")).Kind, chess.Pawn)

		done, err := CompletePromotion(pending, sq("e8"), chess.Knight)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, done.Board.Get(sq("e8")), chess.Piece{Colour: chess.White, Kind: chess.Knight, HasMoved: true})
		testutil.AssertEqual(t, done.ToMove, chess.Black)
		testutil.AssertEqual(t, done.FullMoveNumber, 1)
	})

	t.Run("one step", func(t *testing.T) {
		pos, records := playUCI(t, MustPositionFromFEN(fen), "e7e8q")
		testutil.AssertEqual(t, records[0].PromotedTo, chess.Queen)
		testutil.AssertEqual(t, pos.Board.Get(sq("e8")).Kind, chess.Queen)
		testutil.AssertEqual(t, NotateLongAlgebraic(records[0]), "e7-e8=Q")
		testutil.AssertEqual(t, NotateUCI(records[0]), "e7e8q")
	})

	t.Run("king is not a promotion choice", func(t *testing.T) {
		_, _, err := ApplyMove(MustPositionFromFEN(fen), Move{From: sq("e7"), To: sq("e8"), Promotion: chess.King})
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
	})

	t.Run("promotion piece on an ordinary move", func(t *testing.T) {
		_, _, err := ApplyMove(MustPositionFromFEN(fen), Move{From: sq("e1"), To: sq("e2"), Promotion: chess.Queen})
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
	})

	t.Run("nothing to promote", func(t *testing.T) {
		_, err := CompletePromotion(chess.NewPosition(), sq("e8"), chess.Queen)
		testutil.AssertErrorIs(t, err, errors.ErrNoPromotionPending)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := CompletePromotion(chess.NewPosition(), sq("e8"), chess.Pawn)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
	})

	t.Run("capture promotion by black", func(t *testing.T) {
		pos, records := playUCI(t, MustPositionFromFEN("4k3/8/8/8/8/8/3p4/2R1K3 b - - 0 1"), "d2c1r")
		testutil.AssertEqual(t, records[0].Captured.Kind, chess.Rook)
		testutil.AssertEqual(t, NotateLongAlgebraic(records[0]), "d2xc1=R")
		testutil.AssertEqual(t, pos.FullMoveNumber, 2)
		testutil.AssertEqual(t, pos.ToMove, chess.White)
	})
}
