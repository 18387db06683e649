// chessplay plays a game of chess from UCI moves and reports the result,
// or counts move paths for move generator verification.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/game"
	"github.com/lgbarn/chessgame-go/internal/matching"
	"github.com/lgbarn/chessgame-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *noColor {
		color.NoColor = true
	}
	setupOutputFile(cfg)

	logger, err := cfg.Log.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(2)
	}
	logger.Debug("configuration", zap.Stringer("config", cfg))

	var code int
	if *perftDepth > 0 {
		code = runPerft(cfg, logger, *perftDepth, workerCount())
	} else {
		code = runGame(cfg, logger)
	}

	_ = logger.Sync()
	if err := closeOutput(cfg.OutputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output file %s: %v\n", *outputFile, err)
		code = 2
	}
	os.Exit(code)
}

// closeOutput closes w when it is a file other than stdout.
func closeOutput(w io.Writer) error {
	f, ok := w.(*os.File)
	if !ok || f == os.Stdout {
		return nil
	}
	return f.Close()
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// collectMoves gathers moves from the -f file, the -moves flag and the
// remaining arguments, in that order.
func collectMoves(path, inline string, args []string) ([]string, error) {
	var moves []string
	if path != "" {
		fromFile, err := loadMovesFile(path)
		if err != nil {
			return nil, err
		}
		moves = append(moves, fromFile...)
	}
	moves = append(moves, splitMoves(inline)...)
	for _, arg := range args {
		moves = append(moves, splitMoves(arg)...)
	}
	return moves, nil
}

// loadMovesFile reads moves from a file, skipping blank lines and
// everything after a '#'.
func loadMovesFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, splitMoves(line)...)
	}
	return moves, scanner.Err()
}

// runGame plays the requested moves, applies any reported result and
// writes the report. It returns the process exit code.
func runGame(cfg *config.Config, logger *zap.Logger) int {
	moves, err := collectMoves(*movesFile, *movesArg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading moves: %v\n", err)
		return 2
	}

	if *validateOnly {
		return validateMoves(cfg, moves, cfg.OutputFile)
	}

	g, err := game.New(game.WithConfig(cfg), game.WithLogger(logger), game.WithID(*gameID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	code := 0
	if err := playGame(g, moves, os.Stderr); err != nil {
		code = 1
	}
	if err := reportResults(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 2
	}

	if err := writeReport(cfg, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return 2
	}
	if err := writeExtras(cfg, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing analysis: %v\n", err)
		return 2
	}
	return code
}

// writeExtras writes the -analyze and -material sections after the report.
func writeExtras(cfg *config.Config, g *game.Game) error {
	if *analyze {
		analysis, err := analyzeGame(cfg, g)
		if err != nil {
			return err
		}
		if err := writeAnalysis(cfg.OutputFile, analysis); err != nil {
			return err
		}
	}
	if *materialMatch != "" {
		mm := matching.NewMaterialMatcher(*materialMatch, *exactMaterial)
		return writeMaterialMatch(cfg.OutputFile, g, mm)
	}
	return nil
}

// playGame plays moves, reporting the first rejected move to errOut.
func playGame(g *game.Game, moves []string, errOut io.Writer) error {
	if err := g.Play(moves...); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return err
	}
	return nil
}

// reportResults applies the -forfeit, -resign and -draw flags.
func reportResults(g *game.Game) error {
	if *forfeit != "" {
		colour, err := parseColour(*forfeit)
		if err != nil {
			return err
		}
		g.ReportTimeForfeit(colour)
	}
	if *resign != "" {
		colour, err := parseColour(*resign)
		if err != nil {
			return err
		}
		g.Resign(colour)
	}
	if *drawAgreed {
		g.AgreeDraw()
	}
	return nil
}

// writeReport writes g in the configured format.
func writeReport(cfg *config.Config, g *game.Game) error {
	writer := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err := writer.WriteGame(g); err != nil {
		return err
	}
	return writer.Close()
}

// runPerft prints the perft divide of the start position. It returns the
// process exit code.
func runPerft(cfg *config.Config, logger *zap.Logger, depth, workers int) int {
	pos, err := engine.NewPositionFromFEN(cfg.StartFENOrDefault())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	started := time.Now()
	if err := writePerft(cfg.OutputFile, pos, depth, workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("perft finished",
		zap.Int("depth", depth),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(started)))
	return 0
}

// writePerft writes one "move: nodes" line per root move followed by the
// total.
func writePerft(w io.Writer, pos *chess.Position, depth, workers int) error {
	entries, total, err := engine.PerftDivide(pos, depth, workers)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(bw, "\nNodes searched: %d\n", total)
	return bw.Flush()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays UCI moves (e2e4, e7e8q) and reports the game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessplay e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7\n")
	fmt.Fprintf(os.Stderr, "  chessplay -fen \"8/4P3/8/8/8/8/8/k3K3 w - - 0 1\" -moves e7e8q -json\n")
	fmt.Fprintf(os.Stderr, "  chessplay -validate -moves \"e2e4 e7e5 g1g3\"\n")
	fmt.Fprintf(os.Stderr, "  chessplay -analyze -material Q:q -f game.txt\n")
	fmt.Fprintf(os.Stderr, "  chessplay -perft 4 -workers 8\n")
}
