package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	ToMove     string     `json:"toMove"`
	Check      bool       `json:"check,omitempty"`
	Promoting  bool       `json:"promoting,omitempty"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Move       string `json:"move"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   bool   `json:"castling,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format. The initial FEN is only set
// for games that did not start from the standard position.
func GameToJSON(g *game.Game, cfg *config.OutputConfig) (*JSONGame, error) {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	start, err := engine.NewPositionFromFEN(g.StartFEN())
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		ID:        g.ID(),
		FinalFEN:  g.FEN(),
		ToMove:    colorName(g.CurrentPlayer()),
		Check:     g.IsInCheck(),
		Promoting: g.IsPromoting(),
		Status:    Status(g),
		Result:    g.Result().Score(),
	}
	if fen := g.StartFEN(); fen != engine.InitialFEN {
		jg.InitialFEN = fen
	}

	records := g.Records()
	jg.PlyCount = len(records)
	jg.Moves = convertMoveList(start, records, cfg.Format)
	return jg, nil
}

// convertMoveList converts records, replaying them from start to attach
// the FEN after each ply. A promotion still awaiting its piece has no FEN.
func convertMoveList(start *chess.Position, records []chess.MoveRecord, format config.OutputFormat) []JSONMove {
	moves := make([]JSONMove, 0, len(records))
	pos := start
	for i, rec := range records {
		jm := convertSingleMove(rec, format, i+1, pos.FullMoveNumber)
		if next, err := engine.ReplayRecord(pos, rec); err == nil {
			jm.FEN = engine.PositionToFEN(next)
			pos = next
		}
		moves = append(moves, jm)
	}
	return moves
}

// convertSingleMove converts one record to JSON format.
func convertSingleMove(rec chess.MoveRecord, format config.OutputFormat, ply, moveNum int) JSONMove {
	jm := JSONMove{
		Ply:        ply,
		MoveNumber: moveNum,
		Color:      colorName(rec.Mover),
		Move:       FormatMove(rec, format),
		UCI:        engine.NotateUCI(rec),
		From:       rec.From.String(),
		To:         rec.To.String(),
		Piece:      pieceTypeName(rec.Piece.Kind),
		Castling:   rec.IsCastling,
		EnPassant:  rec.IsEnPassant,
	}
	if rec.IsCapture() {
		jm.Captured = pieceTypeName(rec.Captured.Kind)
	}
	if rec.PromotedTo != chess.NoKind {
		jm.Promotion = pieceTypeName(rec.PromotedTo)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the lower-case name of a piece kind.
func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}

// encodeJSON writes v as indented JSON.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
