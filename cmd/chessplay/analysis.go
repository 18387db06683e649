// analysis.go - Game analysis, validation, and material matching
package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/game"
	"github.com/lgbarn/chessgame-go/internal/matching"
	"github.com/lgbarn/chessgame-go/internal/processing"
)

// validateMoves checks moves from the configured start position without
// playing them. It returns the process exit code.
func validateMoves(cfg *config.Config, moves []string, w io.Writer) int {
	start, err := engine.NewPositionFromFEN(cfg.StartFENOrDefault())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result := processing.ValidateMoves(start, moves)
	if !result.Valid {
		fmt.Fprintln(w, result.ErrorMsg)
		return 1
	}
	fmt.Fprintf(w, "Valid: %d plies\n", result.Plies)
	return 0
}

// analyzeGame replays the moves of g and analyzes them under the
// configured draw rules.
func analyzeGame(cfg *config.Config, g *game.Game) (*processing.GameAnalysis, error) {
	start, err := engine.NewPositionFromFEN(g.StartFEN())
	if err != nil {
		return nil, err
	}
	return processing.AnalyzeGame(start, g.Records(), cfg.Rules.DrawRules(), cfg.Rules.StrictRepetition)
}

// writeAnalysis writes the analysis summary, one "Key: value" line each.
func writeAnalysis(w io.Writer, a *processing.GameAnalysis) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Plies: %d\n", a.Plies)
	fmt.Fprintf(bw, "Captures: %d\n", a.Captures)
	fmt.Fprintf(bw, "Checks: %d\n", a.Checks)
	fmt.Fprintf(bw, "Distinct positions: %d\n", a.UniquePositions)
	fmt.Fprintf(bw, "Most repetitions: %d\n", a.MaxRepetitions)
	fmt.Fprintf(bw, "Material: %s\n", matching.Signature(a.FinalPosition.Board))

	flags := []struct {
		name string
		set  bool
	}{
		{"repetition", a.HasRepetition},
		{"fivefold repetition", a.Has5FoldRepetition},
		{"fifty-move rule", a.HasFiftyMoveRule},
		{"seventy-five-move rule", a.Has75MoveRule},
		{"insufficient material", a.HasInsufficientMaterial},
		{"underpromotion", a.HasUnderpromotion},
		{"material odds", a.HasMaterialOdds},
	}
	for _, f := range flags {
		if f.set {
			fmt.Fprintf(bw, "Feature: %s\n", f.name)
		}
	}
	return bw.Flush()
}

// writeMaterialMatch reports the first ply of g whose material matches mm.
func writeMaterialMatch(w io.Writer, g *game.Game, mm *matching.MaterialMatcher) error {
	start, err := engine.NewPositionFromFEN(g.StartFEN())
	if err != nil {
		return err
	}

	if ply, ok := mm.MatchRecords(start, g.Records()); ok {
		_, err = fmt.Fprintf(w, "Material %s: first reached at ply %d\n", mm.Pattern(), ply)
	} else {
		_, err = fmt.Fprintf(w, "Material %s: not reached\n", mm.Pattern())
	}
	return err
}
