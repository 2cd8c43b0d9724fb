// Package draughts implements an American checkers engine: board and move
// generation with mandatory captures and multi-jump chains, a heuristic
// evaluator, and time-bounded adversarial search with three strategies
// (minimax, alpha-beta, alpha-beta with move ordering).
//
// Example usage:
//
//	engine, err := draughts.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := draughts.NewGame()
//	res, err := engine.Search(ctx, b, draughts.DefaultSearchConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("best move: %s (%d nodes)\n", res.Move, res.NodesExpanded)
package draughts

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/discochess/draughts/board"
	"github.com/discochess/draughts/internal/eval"
	"github.com/discochess/draughts/internal/movegen"
	"github.com/discochess/draughts/internal/search"
	"github.com/discochess/draughts/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrIllegalMove indicates the move is not in the current legal set.
	ErrIllegalMove = errors.New("draughts: illegal move")

	// ErrNoLegalMove indicates a search was requested on a terminal
	// position; the side to move has lost.
	ErrNoLegalMove = errors.New("draughts: no legal move")

	// ErrBadConfig indicates a search config outside the supported ranges.
	ErrBadConfig = errors.New("draughts: invalid search config")
)

// Engine is the front door for every front-end: move generation and
// validation, game-over detection, and AI move selection. An Engine holds
// no per-game state; one instance can serve many boards in sequence.
type Engine struct {
	ev     *eval.Evaluator
	stats  stats.Collector
	logger *zap.Logger
}

// New creates a new Engine with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	ev, err := eval.New(cfg.weights, cfg.evalCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating evaluator: %w", err)
	}

	e := &Engine{
		ev:     ev,
		stats:  cfg.stats,
		logger: cfg.logger,
	}

	e.logger.Debug("engine initialized",
		zap.Int("evalCacheSize", cfg.evalCacheSize),
		zap.Float64("manWeight", cfg.weights.Man),
		zap.Float64("kingWeight", cfg.weights.King),
	)

	return e, nil
}

// NewGame returns a board in the standard starting position: Black on rows
// 0-2, White on rows 5-7, White to move.
func NewGame() *board.Board {
	return board.New()
}

// LegalMoves returns every legal move for the side to move, enforcing the
// forced-capture rule. Front-ends use this to validate and highlight
// destinations; an empty result means the game is over.
func (e *Engine) LegalMoves(b *board.Board) []board.Move {
	e.stats.IncCounter(stats.MetricMoveGenCalls, 1)
	return movegen.Moves(b, b.SideToMove())
}

// ApplyMove validates the move against the current legal set and applies it
// to the board. The board is untouched when ErrIllegalMove is returned.
func (e *Engine) ApplyMove(b *board.Board, m board.Move) error {
	for _, legal := range movegen.Moves(b, b.SideToMove()) {
		if legal.Equal(m) {
			b.Apply(legal)
			return nil
		}
	}
	e.stats.IncCounter(stats.MetricIllegalMoves, 1)
	return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.SideToMove())
}

// Search selects the best move for the side to move under the config's
// strategy, time and depth budgets. Returns ErrNoLegalMove on a terminal
// position. Exceeding the time budget is not an error; the result then
// carries the best move from the deepest completed depth.
func (e *Engine) Search(ctx context.Context, b *board.Board, cfg SearchConfig) (*SearchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e.stats.IncCounter(stats.MetricSearches, 1)

	st, err := search.Run(ctx, b, e.ev, cfg.searchOptions())
	if err != nil {
		if errors.Is(err, search.ErrNoMoves) {
			return nil, ErrNoLegalMove
		}
		return nil, fmt.Errorf("searching: %w", err)
	}

	e.stats.IncCounter(stats.MetricNodesExpanded, st.NodesExpanded)
	e.stats.IncCounter(stats.MetricNodesGenerated, st.NodesGenerated)
	e.stats.IncCounter(stats.MetricPrunes, st.Prunes)
	e.stats.SetGauge(stats.MetricSearchDepth, int64(st.Depth))
	e.stats.ObserveHistogram(stats.MetricSearchSeconds, st.Elapsed.Seconds())

	e.logger.Debug("search complete",
		zap.Stringer("strategy", cfg.Strategy),
		zap.Stringer("move", st.Move),
		zap.Float64("value", st.Value),
		zap.Int("depth", st.Depth),
		zap.Int64("nodesExpanded", st.NodesExpanded),
		zap.Int64("prunes", st.Prunes),
		zap.Duration("elapsed", st.Elapsed),
		zap.Bool("timedOut", st.TimedOut),
	)

	return resultFromStats(cfg.Strategy, st), nil
}

// Outcome reports the game state: a side with no legal moves has lost.
func (e *Engine) Outcome(b *board.Board) Outcome {
	if len(movegen.Moves(b, b.SideToMove())) > 0 {
		return InProgress
	}
	if b.SideToMove() == board.White {
		return BlackWins
	}
	return WhiteWins
}

// Outcome is the game-over state of a position.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	default:
		return "in progress"
	}
}
