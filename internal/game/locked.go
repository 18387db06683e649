package game

import (
	"sync"

	"github.com/lgbarn/chessgame-go/internal/chess"
)

// Locked guards a Game with a mutex for hosts that share it between
// goroutines.
type Locked struct {
	mu   sync.Mutex
	game *Game
}

// NewLocked wraps g. g must not be used directly afterwards.
func NewLocked(g *Game) *Locked {
	return &Locked{game: g}
}

// Do runs fn with exclusive access to the game.
func (l *Locked) Do(fn func(g *Game)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.game)
}

// Play applies UCI moves under the lock.
func (l *Locked) Play(moves ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Play(moves...)
}

// FEN returns the displayed position under the lock.
func (l *Locked) FEN() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.FEN()
}

// Result returns the outcome under the lock.
func (l *Locked) Result() chess.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Result()
}

// ReportTimeForfeit reports a flag fall under the lock.
func (l *Locked) ReportTimeForfeit(flagged chess.Colour) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.ReportTimeForfeit(flagged)
}
