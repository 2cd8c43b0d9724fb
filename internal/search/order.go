package search

import (
	"context"
	"sort"
	"time"

	"github.com/discochess/draughts/board"
	"github.com/discochess/draughts/internal/eval"
	"github.com/discochess/draughts/internal/movegen"
)

// ordered ranks capture moves by the material they remove, biggest haul
// first (kings outweigh men per the evaluation weights). The victims are
// still on the board when the node is expanded, so the rank reads straight
// off the captured squares. A node's moves are either all captures or all
// quiet under the forced-capture rule; quiet moves keep their generation
// order. The sort is stable, so equal hauls keep their generation order too.
func (r *run) ordered(moves []board.Move) []board.Move {
	if !moves[0].IsCapture() {
		return moves
	}
	w := r.ev.Weights()
	type scored struct {
		m    board.Move
		gain float64
	}
	list := make([]scored, len(moves))
	for i, m := range moves {
		var gain float64
		for _, sq := range m.Captures {
			if r.b.At(sq).IsKing() {
				gain += w.King
			} else {
				gain += w.Man
			}
		}
		list[i] = scored{m: m, gain: gain}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].gain > list[j].gain
	})
	out := make([]board.Move, len(list))
	for i, s := range list {
		out[i] = s.m
	}
	return out
}

// orderingGainDepth keeps the with/without comparison runs cheap.
const orderingGainDepth = 2

// orderingGain estimates how much ordering helps by running two shallow
// alpha-beta searches, with and without ordering, and comparing prune
// counts. The estimate runs on its own clones and counters, so it never
// leaks into the reported instrumentation.
func orderingGain(ctx context.Context, b *board.Board, ev *eval.Evaluator, opts Options) float64 {
	depth := orderingGainDepth
	if opts.MaxPly < depth {
		depth = opts.MaxPly
	}
	budget := opts.TimeLimit
	if budget > 500*time.Millisecond {
		budget = 500 * time.Millisecond
	}

	without := countPrunes(ctx, b, ev, depth, budget, false)
	with := countPrunes(ctx, b, ev, depth, budget, true)
	if without == 0 {
		return 0
	}
	return float64(without-with) / float64(without) * 100
}

func countPrunes(ctx context.Context, b *board.Board, ev *eval.Evaluator, depth int, budget time.Duration, order bool) int64 {
	r := &run{
		b:        b.Clone(),
		ev:       ev,
		opts:     Options{Prune: true, Order: order, MaxPly: depth, TimeLimit: budget},
		root:     b.SideToMove(),
		ctx:      ctx,
		deadline: time.Now().Add(budget),
	}
	legal := movegen.Moves(r.b, r.root)
	if len(legal) == 0 {
		return 0
	}
	r.rootSearch(legal, depth)
	return r.prunes
}
