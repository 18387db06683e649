// Package game provides the stateful controller for a game of chess:
// piece selection, move execution, promotion, results and history review.
package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/hashing"
)

// Game is a single game of chess. It is not safe for concurrent use; see
// Locked.
type Game struct {
	id     string
	cfg    *config.Config
	rules  engine.DrawRules
	logger *zap.Logger

	start       *chess.Position
	pos         *chess.Position
	history     []chess.MoveRecord
	repetitions *hashing.RepetitionTable

	selected *chess.Square
	turn     turnState
	result   chess.Result
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the start position and draw rules.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithLogger sets the logger for game events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithID sets the game identifier. By default a random UUID is used.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// New creates a game at its start position.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		cfg:    config.NewConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}

	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := engine.NewPositionFromFEN(g.cfg.StartFENOrDefault())
	if err != nil {
		return nil, err
	}

	rules := g.cfg.Rules
	if rules == nil {
		rules = config.NewRulesConfig()
	}
	g.rules = rules.DrawRules()
	g.start = start
	g.repetitions = hashing.NewRepetitionTable(rules.StrictRepetition)
	g.logger = g.logger.With(zap.String("game_id", g.id))

	g.Reset()
	g.logger.Info("game created", zap.String("fen", engine.PositionToFEN(start)))
	return g, nil
}

// Reset returns the game to its start position and clears the history
// and result.
func (g *Game) Reset() {
	g.pos = g.start.Copy()
	g.history = nil
	g.selected = nil
	g.turn = normalTurn{}
	g.result = chess.Result{}
	g.repetitions.Reset()
	g.repetitions.Add(g.pos)
	g.logger.Debug("game reset")
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// displayed returns the position on show: the reviewed one while
// navigating, otherwise the live one.
func (g *Game) displayed() *chess.Position {
	if r, ok := g.turn.(reviewing); ok {
		return r.pos
	}
	return g.pos
}

// Piece returns the piece on sq of the displayed board. Off-board squares
// are empty.
func (g *Game) Piece(sq chess.Square) chess.Piece {
	return g.displayed().Board.Get(sq)
}

// Board returns a copy of the displayed board.
func (g *Game) Board() *chess.Board {
	return g.displayed().Board.Copy()
}

// CurrentPlayer returns the side to move in the live game. While a
// promotion is pending this is still the promoting side.
func (g *Game) CurrentPlayer() chess.Colour {
	return g.pos.ToMove
}

// CurrentPlayerForDisplay returns the side to move on the displayed board.
func (g *Game) CurrentPlayerForDisplay() chess.Colour {
	return g.displayed().ToMove
}

// SelectPiece selects the current player's piece on sq. It fails when the
// game is over, a promotion is pending, history is being reviewed, or sq
// does not hold a piece of the side to move.
func (g *Game) SelectPiece(sq chess.Square) bool {
	if !g.acceptsMoves() {
		return false
	}
	piece := g.pos.Board.Get(sq)
	if piece.IsEmpty() || piece.Colour != g.pos.ToMove {
		return false
	}
	g.selected = &sq
	g.logger.Debug("piece selected", zap.Stringer("square", sq), zap.Stringer("piece", piece))
	return true
}

// Deselect clears the selection.
func (g *Game) Deselect() {
	g.selected = nil
}

// IsPieceSelected reports whether a piece is selected.
func (g *Game) IsPieceSelected() bool {
	return g.selected != nil
}

// SelectedSquare returns the selected square, if any.
func (g *Game) SelectedSquare() (chess.Square, bool) {
	if g.selected == nil {
		return chess.Square{}, false
	}
	return *g.selected, true
}

// acceptsMoves reports whether the game is live and waiting for a move.
func (g *Game) acceptsMoves() bool {
	if g.result.IsOver() {
		return false
	}
	_, ok := g.turn.(normalTurn)
	return ok
}

// ValidMoves returns the legal destinations of the side to move's piece
// on sq. It is empty when the game does not accept moves.
func (g *Game) ValidMoves(sq chess.Square) []chess.Square {
	if !g.acceptsMoves() || g.pos.Board.Get(sq).Colour != g.pos.ToMove {
		return nil
	}
	return engine.LegalDestinations(g.pos, sq)
}

// CastlingMoves returns the castling destinations of the king on sq.
func (g *Game) CastlingMoves(sq chess.Square) []chess.Square {
	if !g.acceptsMoves() || g.pos.Board.Get(sq).Colour != g.pos.ToMove {
		return nil
	}
	return engine.CastlingDestinations(g.pos.Board, sq)
}

// IsEnPassantCapture reports whether moving from from to to in the live
// game would capture en passant.
func (g *Game) IsEnPassantCapture(from, to chess.Square) bool {
	return engine.CanEnPassant(g.pos.Board, from, to, g.pos.LastDoublePawnMove)
}

// IsCaptureMove reports whether moving from from to to in the live game
// would capture a piece, en passant included.
func (g *Game) IsCaptureMove(from, to chess.Square) bool {
	mover := g.pos.Board.Get(from)
	target := g.pos.Board.Get(to)
	if !mover.IsEmpty() && !target.IsEmpty() && target.Colour != mover.Colour {
		return true
	}
	return g.IsEnPassantCapture(from, to)
}

// MovePiece moves the selected piece to to. It fails, leaving the
// selection in place, unless to is a legal destination. A pawn reaching
// the far rank leaves the game awaiting CompletePromotion with the turn
// not yet handed over.
func (g *Game) MovePiece(to chess.Square) bool {
	if g.selected == nil || !g.acceptsMoves() {
		return false
	}
	from := *g.selected
	if !engine.IsLegalDestination(g.pos, from, to) {
		g.logger.Debug("move rejected", zap.Stringer("from", from), zap.Stringer("to", to))
		return false
	}

	capture := g.IsCaptureMove(from, to)
	next, rec, err := engine.ApplyMove(g.pos, engine.Move{From: from, To: to})
	if err != nil {
		g.logger.Warn("move failed", zap.Error(err))
		return false
	}

	g.pos = next
	g.selected = nil
	g.history = append(g.history, rec)

	if rec.IsPromotion {
		g.turn = awaitingPromotion{square: to, colour: rec.Mover}
		g.logger.Info("promotion pending",
			zap.Int("ply", len(g.history)),
			zap.Stringer("square", to),
			zap.Stringer("mover", rec.Mover))
		return true
	}

	g.logger.Info("move applied",
		zap.Int("ply", len(g.history)),
		zap.String("move", engine.NotateLongAlgebraic(rec)),
		zap.Stringer("mover", rec.Mover),
		zap.Bool("capture", capture))
	g.completePly()
	return true
}

// IsPromoting reports whether a promotion choice is outstanding.
func (g *Game) IsPromoting() bool {
	_, ok := g.turn.(awaitingPromotion)
	return ok
}

// PromotingPlayer returns the side choosing a promotion piece.
func (g *Game) PromotingPlayer() (chess.Colour, bool) {
	p, ok := g.turn.(awaitingPromotion)
	return p.colour, ok
}

// CompletePromotion replaces the waiting pawn with kind, hands the move
// to the other side and checks whether the game has ended.
func (g *Game) CompletePromotion(kind chess.Kind) bool {
	pending, ok := g.turn.(awaitingPromotion)
	if !ok || g.result.IsOver() {
		return false
	}
	next, err := engine.CompletePromotion(g.pos, pending.square, kind)
	if err != nil {
		g.logger.Debug("promotion rejected", zap.Stringer("kind", kind), zap.Error(err))
		return false
	}

	g.pos = next
	g.turn = normalTurn{}
	last := &g.history[len(g.history)-1]
	last.PromotedTo = kind

	g.logger.Info("promotion completed",
		zap.Int("ply", len(g.history)),
		zap.String("move", engine.NotateLongAlgebraic(*last)),
		zap.Stringer("mover", pending.colour))
	g.completePly()
	return true
}

// completePly records the new position and adjudicates it.
func (g *Game) completePly() {
	count := g.repetitions.Add(g.pos)
	if result := engine.Adjudicate(g.pos, count, g.rules); result.IsOver() {
		g.finish(result)
	}
}

// finish ends the game. An outstanding promotion choice is dropped and
// the pawn stays on the last rank.
func (g *Game) finish(result chess.Result) {
	g.result = result
	g.selected = nil
	if _, ok := g.turn.(awaitingPromotion); ok {
		g.turn = normalTurn{}
	}
	g.logger.Info("game over",
		zap.String("result", result.String()),
		zap.String("score", result.Score()),
		zap.Int("plies", len(g.history)))
}

// IsInCheck reports whether the side to move is in check.
func (g *Game) IsInCheck() bool {
	return engine.IsInCheck(g.pos.Board, g.pos.ToMove)
}

// IsCheckmate reports whether the side to move has been checkmated.
func (g *Game) IsCheckmate() bool {
	return !g.IsPromoting() && engine.IsCheckmate(g.pos)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return !g.IsPromoting() && engine.IsStalemate(g.pos)
}

// IsThreefoldRepetition reports whether the live position has occurred
// the configured number of times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions.Count(g.pos) >= g.rules.RepetitionThreshold
}

// IsFiftyMoveRule reports whether the half-move clock has reached the limit.
func (g *Game) IsFiftyMoveRule() bool {
	return engine.IsFiftyMoveRule(g.pos.HalfMoveClock, g.rules.HalfMoveLimit)
}

// IsInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsInsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.pos.Board)
}

// HalfMoveClock returns the live half-move clock.
func (g *Game) HalfMoveClock() int {
	return g.pos.HalfMoveClock
}

// FullMoveNumber returns the live full move number.
func (g *Game) FullMoveNumber() int {
	return g.pos.FullMoveNumber
}

// FEN returns the displayed position in FEN.
func (g *Game) FEN() string {
	return engine.PositionToFEN(g.displayed())
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool {
	return g.result.IsOver()
}

// Result returns the outcome; the zero Result while the game continues.
func (g *Game) Result() chess.Result {
	return g.result
}

// Winner returns the winning side, if the result has one.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.result.Winner, g.result.HasWinner()
}

// SetResult ends the game with an outcome decided outside the board. It
// fails if the game is already over or r does not end it.
func (g *Game) SetResult(r chess.Result) bool {
	if g.result.IsOver() || !r.IsOver() {
		return false
	}
	g.logger.Info("result reported", zap.String("result", r.String()))
	g.finish(r)
	return true
}

// ReportTimeForfeit ends the game as a loss for the side whose clock ran out.
func (g *Game) ReportTimeForfeit(flagged chess.Colour) bool {
	return g.SetResult(chess.Result{Kind: chess.TimeForfeit, Winner: flagged.Opposite()})
}

// Resign ends the game as a loss for colour.
func (g *Game) Resign(colour chess.Colour) bool {
	return g.SetResult(chess.Result{Kind: chess.Resignation, Winner: colour.Opposite()})
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() bool {
	return g.SetResult(chess.DrawBy(chess.Agreement))
}

// MoveHistory returns every ply in hyphenated long algebraic notation.
func (g *Game) MoveHistory() []string {
	moves := make([]string, 0, len(g.history))
	for _, rec := range g.history {
		moves = append(moves, engine.NotateLongAlgebraic(rec))
	}
	return moves
}

// Records returns a copy of the move history.
func (g *Game) Records() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), g.history...)
}

// StartFEN returns the start position in FEN.
func (g *Game) StartFEN() string {
	return engine.PositionToFEN(g.start)
}
