// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

var (
	// Position and moves
	startFEN  = flag.String("fen", "", "Start position in FEN (default: standard starting position)")
	movesArg  = flag.String("moves", "", "UCI moves to play, separated by spaces or commas")
	movesFile = flag.String("f", "", "File of UCI moves to play (# starts a comment)")
	gameID    = flag.String("id", "", "Game identifier (default: random UUID)")

	// Draw rules
	repetition = flag.Int("repetition", 3, "Occurrences of a position that draw the game")
	halfMoves  = flag.Int("halfmove", 100, "Half-move clock value that draws the game")
	strictRep  = flag.Bool("strict", false, "Count castling rights and en passant in repetitions")

	// Results reported after the moves
	forfeit    = flag.String("forfeit", "", "Report a time forfeit by this side (white or black)")
	resign     = flag.String("resign", "", "Resign for this side (white or black)")
	drawAgreed = flag.Bool("draw", false, "End the game as a draw by agreement")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "halg", "Move notation: halg or uci")
	jsonOutput   = flag.Bool("json", false, "Output in JSON format")
	noBoard      = flag.Bool("noboard", false, "Don't draw the board in text output")
	noColor      = flag.Bool("nocolor", false, "Disable terminal colours")

	// Analysis
	validateOnly  = flag.Bool("validate", false, "Only check that the moves are legal")
	analyze       = flag.Bool("analyze", false, "Append a move analysis to the report")
	materialMatch = flag.String("material", "", "Report the first ply matching a material pattern such as QR:qrr")
	exactMaterial = flag.Bool("exact", false, "Require the -material pattern to match exactly")

	// Move generator verification
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth from the start position")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	logDev   = flag.Bool("log-dev", false, "Human-readable development logging")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds and validates the configuration from the flags.
func buildConfig() (*config.Config, error) {
	format, err := config.ParseOutputFormat(strings.ToLower(*outputFormat))
	if err != nil {
		return nil, err
	}

	return config.NewConfigBuilder().
		WithStartFEN(*startFEN).
		WithRepetitionThreshold(*repetition).
		WithHalfMoveLimit(*halfMoves).
		WithStrictRepetition(*strictRep).
		WithLogLevel(*logLevel).
		WithDevelopmentLogging(*logDev).
		WithOutputFormat(format).
		WithJSONOutput(*jsonOutput).
		WithBoard(!*noBoard).
		WithColor(!*noColor).
		Build()
}

// workerCount returns the perft worker count, defaulting to the CPU count.
func workerCount() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

// parseColour parses "white"/"w" or "black"/"b".
func parseColour(name string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidConfig, "colour %q", name)
}

// splitMoves splits a move list on spaces, tabs and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\n' || r == '\r'
	})
}
