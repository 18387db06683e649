// Package hashing provides Zobrist position hashing and repetition counting.
package hashing

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred in a game.
// Entries are keyed by Zobrist hash and confirmed against the position
// signature, so hash collisions never merge distinct positions.
type RepetitionTable struct {
	// hashTable stores the positions seen under each hash
	hashTable map[uint64][]PositionSignature
	// strict adds castling rights and en passant to the identity
	strict bool
	// maxCount tracks the highest occurrence count seen
	maxCount int
}

// PositionSignature identifies one position within a hash bucket.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Key is the exact identity the hash stands for
	Key string
	// Count is how many times the position has occurred
	Count int
}

// NewRepetitionTable creates an empty table. With strict set, positions
// that differ only in castling rights or en passant possibility are
// counted separately.
func NewRepetitionTable(strict bool) *RepetitionTable {
	return &RepetitionTable{
		hashTable: make(map[uint64][]PositionSignature),
		strict:    strict,
	}
}

// Add records an occurrence of pos and returns how many times it has now
// occurred.
func (t *RepetitionTable) Add(pos *chess.Position) int {
	hash := PositionHash(pos, t.strict)
	key := t.signature(pos)

	bucket := t.hashTable[hash]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Count++
			t.noteCount(bucket[i].Count)
			return bucket[i].Count
		}
	}

	t.hashTable[hash] = append(bucket, PositionSignature{Hash: hash, Key: key, Count: 1})
	t.noteCount(1)
	return 1
}

// Count returns how many times pos has occurred.
func (t *RepetitionTable) Count(pos *chess.Position) int {
	key := t.signature(pos)
	for _, sig := range t.hashTable[PositionHash(pos, t.strict)] {
		if sig.Key == key {
			return sig.Count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	count := 0
	for _, sigs := range t.hashTable {
		count += len(sigs)
	}
	return count
}

// Strict reports whether castling and en passant rights are part of a
// position's identity.
func (t *RepetitionTable) Strict() bool {
	return t.strict
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.hashTable = make(map[uint64][]PositionSignature)
	t.maxCount = 0
}

func (t *RepetitionTable) noteCount(n int) {
	if n > t.maxCount {
		t.maxCount = n
	}
}

// signature spells out the identity a hash stands for.
func (t *RepetitionTable) signature(pos *chess.Position) string {
	var sb strings.Builder
	sb.WriteString(pos.Board.Signature())
	sb.WriteString(pos.ToMove.String())
	if !t.strict {
		return sb.String()
	}

	rights := pos.Rights()
	for _, ok := range []bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		sb.WriteString(strconv.FormatBool(ok))
	}
	if file, ok := enPassantFile(pos); ok {
		sb.WriteString(strconv.Itoa(file))
	}
	return sb.String()
}
