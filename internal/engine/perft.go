package engine

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/worker"
)

// Perft counts the leaf positions reachable from pos in exactly depth plies.
// Promotions count once per choice of piece.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += Perft(applyGenerated(pos, m), depth-1)
	}
	return nodes
}

// applyGenerated plays a move produced by LegalMoves without validating it
// again.
func applyGenerated(pos *chess.Position, m Move) *chess.Position {
	next, rec := applyUnchecked(pos, m.From, m.To)
	if rec.IsPromotion {
		next.Board.Set(m.To, chess.Piece{Colour: rec.Mover, Kind: m.Promotion, HasMoved: true})
		finishTurn(next)
	}
	return next
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// PerftDivide runs Perft below each root move in parallel and returns the
// per-move counts in generation order. workers below 1 means one worker.
func PerftDivide(pos *chess.Position, depth, workers int) ([]DivideEntry, uint64, error) {
	if depth < 1 {
		return nil, 1, nil
	}

	moves := LegalMoves(pos)
	items := make([]worker.WorkItem, 0, len(moves))
	for i, m := range moves {
		items = append(items, worker.WorkItem{Position: applyGenerated(pos, m), Label: m.String(), Depth: depth - 1, Index: i})
	}

	pool := worker.NewPool(perftItem, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	results := pool.Run(items)

	entries := make([]DivideEntry, 0, len(results))
	var total uint64
	for _, r := range results {
		if r.Error != nil {
			return nil, 0, r.Error
		}
		entries = append(entries, DivideEntry{Move: r.Label, Nodes: r.Nodes})
		total += r.Nodes
	}
	if len(entries) != len(items) {
		return nil, 0, fmt.Errorf("perft divide: %d of %d root moves searched", len(entries), len(items))
	}
	return entries, total, nil
}

// perftItem searches one work item.
func perftItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Label: item.Label,
		Index: item.Index,
		Nodes: Perft(item.Position, item.Depth),
	}
}
