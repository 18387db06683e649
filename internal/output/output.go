// Package output renders game reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/game"
)

// MoveWriter writes space-separated tokens, wrapping lines at a maximum
// length.
type MoveWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewMoveWriter creates a new move writer. A non-positive maxLineLength
// means 80.
func NewMoveWriter(w io.Writer, maxLineLength int) *MoveWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &MoveWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator or a line break if needed.
func (o *MoveWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *MoveWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove formats a ply in the given notation.
func FormatMove(rec chess.MoveRecord, format config.OutputFormat) string {
	if format == config.UCI {
		return engine.NotateUCI(rec)
	}
	return engine.NotateLongAlgebraic(rec)
}

// palette holds the colour functions for text reports.
type palette struct {
	white  *color.Color
	black  *color.Color
	empty  *color.Color
	label  *color.Color
	status *color.Color
}

// newPalette returns the report colours. When enabled is false every
// colour is switched off; otherwise the terminal decides.
func newPalette(enabled bool) palette {
	p := palette{
		white:  color.New(color.FgHiWhite, color.Bold),
		black:  color.New(color.FgRed, color.Bold),
		empty:  color.New(color.FgHiBlack),
		label:  color.New(color.FgCyan),
		status: color.New(color.FgYellow, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.white, p.black, p.empty, p.label, p.status} {
			c.DisableColor()
		}
	}
	return p
}

// piece colours a board letter.
func (p palette) piece(pc chess.Piece) string {
	letter := string(pc.Letter())
	switch {
	case pc.IsEmpty():
		return p.empty.Sprint(letter)
	case pc.Colour == chess.White:
		return p.white.Sprint(letter)
	default:
		return p.black.Sprint(letter)
	}
}

// WriteBoard draws board with rank 8 at the top and file and rank labels.
func WriteBoard(w io.Writer, board *chess.Board, colour bool) error {
	p := newPalette(colour)
	var sb strings.Builder

	sb.WriteString("  +-----------------+\n")
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(p.label.Sprint(string(rune('8' - row))))
		sb.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(p.piece(board.Get(chess.Sq(row, col))))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    ")
	sb.WriteString(p.label.Sprint("a b c d e f g h"))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteMoves writes the numbered move list, "1. e2-e4 e7-e5 2. ...",
// starting from the given position's move number and side to move.
func WriteMoves(w io.Writer, start *chess.Position, records []chess.MoveRecord, format config.OutputFormat) {
	mw := NewMoveWriter(w, 80)
	number := start.FullMoveNumber
	for i, rec := range records {
		switch {
		case rec.Mover == chess.White:
			mw.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			mw.Write(fmt.Sprintf("%d...", number))
		}
		mw.Write(FormatMove(rec, format))
		if rec.Mover == chess.Black {
			number++
		}
	}
	if len(records) > 0 {
		mw.NewLine()
	}
}

// Status describes the state of the live game in one line.
func Status(g *game.Game) string {
	switch {
	case g.IsGameOver():
		return g.Result().String()
	case g.IsPromoting():
		colour, _ := g.PromotingPlayer()
		return colour.String() + " to choose a promotion piece"
	case g.IsInCheck():
		return g.CurrentPlayer().String() + " to move (check)"
	default:
		return g.CurrentPlayer().String() + " to move"
	}
}

// WriteGame writes a text report of g: an optional board diagram, the
// move list, the final FEN, the status and the score.
func WriteGame(w io.Writer, g *game.Game, cfg *config.OutputConfig) error {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	start, err := engine.NewPositionFromFEN(g.StartFEN())
	if err != nil {
		return err
	}
	p := newPalette(cfg.Color)

	fmt.Fprintf(w, "Game %s\n", g.ID())
	if fen := g.StartFEN(); fen != engine.InitialFEN {
		fmt.Fprintf(w, "Start: %s\n", fen)
	}
	if cfg.ShowBoard {
		if err := WriteBoard(w, g.Board(), cfg.Color); err != nil {
			return err
		}
	}
	WriteMoves(w, start, g.Records(), cfg.Format)
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "Status: %s\n", p.status.Sprint(Status(g)))
	_, err = fmt.Fprintf(w, "Result: %s\n", g.Result().Score())
	return err
}
