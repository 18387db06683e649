package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0xC0DE

// zobristKeys holds one random key per piece/square pair plus the keys
// for the state outside the placement.
type zobristKeys struct {
	pieces        [2][7][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove   uint64
	castling      [4]uint64
	enPassantFile [chess.BoardSize]uint64
}

var keys = newZobristKeys(zobristSeed)

func newZobristKeys(seed int64) *zobristKeys {
	rng := rand.New(rand.NewSource(seed))
	k := &zobristKeys{}
	for colour := range k.pieces {
		for kind := range k.pieces[colour] {
			for sq := range k.pieces[colour][kind] {
				k.pieces[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	k.whiteToMove = rng.Uint64()
	for i := range k.castling {
		k.castling[i] = rng.Uint64()
	}
	for i := range k.enPassantFile {
		k.enPassantFile[i] = rng.Uint64()
	}
	return k
}

// GenerateZobristHash hashes the piece placement of a board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		hash ^= keys.pieces[p.Colour][p.Kind][sq.Row*chess.BoardSize+sq.Col]
	})
	return hash
}

// PositionHash hashes the placement and the side to move. With strict set
// the castling rights and the file of a pending en passant capture are
// mixed in as well.
func PositionHash(pos *chess.Position, strict bool) uint64 {
	hash := GenerateZobristHash(pos.Board)
	if pos.ToMove == chess.White {
		hash ^= keys.whiteToMove
	}
	if !strict {
		return hash
	}

	rights := pos.Rights()
	for i, ok := range []bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if ok {
			hash ^= keys.castling[i]
		}
	}
	if file, ok := enPassantFile(pos); ok {
		hash ^= keys.enPassantFile[file]
	}
	return hash
}

// enPassantFile returns the file of the last double push when a pawn of
// the side to move stands beside the pushed pawn. Pins are not considered.
func enPassantFile(pos *chess.Position) (int, bool) {
	if pos.LastDoublePawnMove == nil {
		return 0, false
	}
	origin := *pos.LastDoublePawnMove
	pusher := pos.ToMove.Opposite()
	landed := origin.Offset(2*chess.Forward(pusher), 0)
	for _, dCol := range []int{-1, 1} {
		if pos.Board.Get(landed.Offset(0, dCol)).Is(pos.ToMove, chess.Pawn) {
			return origin.Col, true
		}
	}
	return 0, false
}
