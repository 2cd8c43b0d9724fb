// Package search implements depth-first adversarial search over checkers
// positions: plain minimax, alpha-beta pruning, and alpha-beta with move
// ordering, all sharing one traversal skeleton.
//
// A search runs single-threaded on a private clone of the caller's board,
// exploring branches with Apply/Undo pairs. The wall clock is polled before
// every node expansion; when the budget is exhausted the search stops
// expanding and returns the best move from the deepest completed depth.
package search

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/discochess/draughts/board"
	"github.com/discochess/draughts/internal/eval"
	"github.com/discochess/draughts/internal/movegen"
)

// ErrNoMoves is returned when the side to move has no legal move; the
// position is terminal and that side has lost.
var ErrNoMoves = errors.New("search: no legal moves")

// Options selects the traversal policy and budgets for one search call.
type Options struct {
	// Prune enables alpha-beta cutoffs. Without it every child of every
	// node is expanded (plain minimax).
	Prune bool

	// Order ranks capture chains by captured material before expansion.
	// Only a reordering; the selected move's value is identical to the
	// unordered search.
	Order bool

	// MaxPly bounds the search depth; one ply is one side's move.
	MaxPly int

	// TimeLimit bounds the wall-clock time of the whole call.
	TimeLimit time.Duration
}

// Stats is the outcome of one search call: the chosen move and the
// instrumentation accumulated while finding it. Every call produces a
// fresh Stats; nothing is shared across calls.
type Stats struct {
	Move board.Move

	// Value is the backed-up score of Move; +Inf and -Inf mark proven
	// wins and losses. Zero when Depth is 0: no depth completed, so the
	// seed move carries no value.
	Value float64

	// Depth is the deepest fully completed ply depth.
	Depth int

	// NodesExpanded counts nodes whose children were generated and
	// recursed into; NodesGenerated counts child moves produced,
	// including ones never visited due to pruning; Prunes counts cutoff
	// events, once per cutoff regardless of how many siblings it skips.
	NodesExpanded  int64
	NodesGenerated int64
	Prunes         int64

	Elapsed  time.Duration
	TimedOut bool

	// OrderingGain estimates, in percent, how many prunes ordering saved
	// at shallow depth. Only populated when ordering is enabled.
	OrderingGain float64
}

// Run searches the position and returns the best move for the side to move.
// The caller's board is never modified. Context cancellation is treated
// like the time cutoff: the best result found so far is returned.
func Run(ctx context.Context, b *board.Board, ev *eval.Evaluator, opts Options) (*Stats, error) {
	start := time.Now()
	r := &run{
		b:        b.Clone(),
		ev:       ev,
		opts:     opts,
		root:     b.SideToMove(),
		ctx:      ctx,
		deadline: start.Add(opts.TimeLimit),
	}

	legal := movegen.Moves(r.b, r.root)
	if len(legal) == 0 {
		return nil, ErrNoMoves
	}

	// Seed with the first legal move so a cutoff before the first
	// completed depth still yields a playable move.
	best := legal[0]
	bestVal := math.Inf(-1)
	completed := 0

	for depth := 1; depth <= opts.MaxPly; depth++ {
		m, v, ok := r.rootSearch(legal, depth)
		if !ok {
			break // deadline hit mid-depth; keep the last completed depth
		}
		best, bestVal, completed = m, v, depth
	}
	if completed == 0 {
		bestVal = 0 // the seed move carries no value, not a proven loss
	}

	st := &Stats{
		Move:           best,
		Value:          bestVal,
		Depth:          completed,
		NodesExpanded:  r.nodesExpanded,
		NodesGenerated: r.nodesGenerated,
		Prunes:         r.prunes,
		Elapsed:        time.Since(start),
		TimedOut:       r.timeUp,
	}
	if opts.Order {
		st.OrderingGain = orderingGain(ctx, b, ev, opts)
	}
	return st, nil
}

// run carries the per-call state through the recursion. Counters live here,
// never in package state, so repeated searches stay isolated.
type run struct {
	b    *board.Board
	ev   *eval.Evaluator
	opts Options
	root board.Color

	ctx      context.Context
	deadline time.Time
	timeUp   bool

	nodesExpanded  int64
	nodesGenerated int64
	prunes         int64
}

// expired reports whether the time budget is spent or the context canceled.
func (r *run) expired() bool {
	if time.Now().After(r.deadline) || r.ctx.Err() != nil {
		r.timeUp = true
		return true
	}
	return false
}

// rootSearch runs one fixed-depth search over the root moves. The root is
// always a maximizing node for the side to move. Ties keep the move seen
// first, so results are stable across runs.
func (r *run) rootSearch(moves []board.Move, depth int) (board.Move, float64, bool) {
	if r.expired() {
		return board.Move{}, 0, false
	}
	r.nodesExpanded++
	r.nodesGenerated += int64(len(moves))
	if r.opts.Order {
		moves = r.ordered(moves)
	}

	best := moves[0]
	bestVal := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, m := range moves {
		u := r.b.Apply(m)
		v, ok := r.node(depth-1, alpha, beta, false)
		r.b.Undo(u)
		if !ok {
			return best, bestVal, false
		}
		if v > bestVal {
			bestVal, best = v, m
		}
		if r.opts.Prune && bestVal > alpha {
			alpha = bestVal
		}
	}
	return best, bestVal, true
}

// node evaluates one interior position. maximizing is true when the side to
// move is the root side. Returns ok=false when the budget expired; partial
// values from an expired subtree are discarded by every ancestor.
func (r *run) node(depth int, alpha, beta float64, maximizing bool) (float64, bool) {
	if r.expired() {
		return 0, false
	}
	if depth <= 0 {
		return r.ev.Score(r.b, r.root), true
	}

	side := r.b.SideToMove()
	moves := movegen.Moves(r.b, side)
	if len(moves) == 0 {
		// No legal move: the side to move has lost.
		if side == r.root {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	r.nodesExpanded++
	r.nodesGenerated += int64(len(moves))
	if r.opts.Order {
		moves = r.ordered(moves)
	}

	if maximizing {
		v := math.Inf(-1)
		for _, m := range moves {
			u := r.b.Apply(m)
			val, ok := r.node(depth-1, alpha, beta, false)
			r.b.Undo(u)
			if !ok {
				return 0, false
			}
			if val > v {
				v = val
			}
			if r.opts.Prune {
				if v >= beta {
					r.prunes++
					return v, true
				}
				if v > alpha {
					alpha = v
				}
			}
		}
		return v, true
	}

	v := math.Inf(1)
	for _, m := range moves {
		u := r.b.Apply(m)
		val, ok := r.node(depth-1, alpha, beta, true)
		r.b.Undo(u)
		if !ok {
			return 0, false
		}
		if val < v {
			v = val
		}
		if r.opts.Prune {
			if v <= alpha {
				r.prunes++
				return v, true
			}
			if v < beta {
				beta = v
			}
		}
	}
	return v, true
}
