// Package matching provides material balance matching over played games.
package matching

import (
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

var allKinds = []chess.Kind{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Kind]int
	blackPieces map[chess.Kind]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn; unknown letters
// are ignored.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Kind]int),
		blackPieces: make(map[chess.Kind]int),
	}
	parts := strings.Split(pattern, ":")
	countKinds(mm.whitePieces, parts[0])
	if len(parts) >= 2 {
		countKinds(mm.blackPieces, parts[1])
	}
	return mm
}

func countKinds(counts map[chess.Kind]int, s string) {
	for i := 0; i < len(s); i++ {
		if kind := chess.KindFromLetter(s[i]); kind != chess.NoKind {
			counts[kind]++
		}
	}
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}

// MatchRecords replays records from start and returns the first ply
// (0 for start itself) whose position matches. A trailing promotion
// still awaiting its piece ends the replay.
func (mm *MaterialMatcher) MatchRecords(start *chess.Position, records []chess.MoveRecord) (int, bool) {
	if mm.MatchBoard(start.Board) {
		return 0, true
	}

	pos := start
	for i, rec := range records {
		next, err := engine.ReplayRecord(pos, rec)
		if err != nil {
			break
		}
		pos = next
		if mm.MatchBoard(pos.Board) {
			return i + 1, true
		}
	}
	return 0, false
}

// MatchBoard checks if a board matches the material pattern.
func (mm *MaterialMatcher) MatchBoard(board *chess.Board) bool {
	whiteCounts := make(map[chess.Kind]int)
	blackCounts := make(map[chess.Kind]int)
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		if p.Colour == chess.White {
			whiteCounts[p.Kind]++
		} else {
			blackCounts[p.Kind]++
		}
	})

	if mm.exactMatch {
		return exactMaterialMatch(mm.whitePieces, whiteCounts) &&
			exactMaterialMatch(mm.blackPieces, blackCounts)
	}
	return minimalMaterialMatch(mm.whitePieces, whiteCounts) &&
		minimalMaterialMatch(mm.blackPieces, blackCounts)
}

// exactMaterialMatch checks that counts holds exactly the wanted pieces.
func exactMaterialMatch(want, counts map[chess.Kind]int) bool {
	for _, kind := range allKinds {
		if want[kind] != counts[kind] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the wanted pieces exist.
func minimalMaterialMatch(want, counts map[chess.Kind]int) bool {
	for kind, count := range want {
		if counts[kind] < count {
			return false
		}
	}
	return true
}

// Signature returns the material of board in pattern form, pieces in
// K Q R B N P order, e.g. "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp".
func Signature(board *chess.Board) string {
	counts := [2]map[chess.Kind]int{{}, {}}
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		counts[p.Colour][p.Kind]++
	})

	var sb strings.Builder
	for _, kind := range allKinds {
		sb.WriteString(strings.Repeat(string(kind.Letter()), counts[chess.White][kind]))
	}
	sb.WriteByte(':')
	for _, kind := range allKinds {
		sb.WriteString(strings.ToLower(strings.Repeat(string(kind.Letter()), counts[chess.Black][kind])))
	}
	return sb.String()
}
