package draughts

import (
	"fmt"
	"time"

	"github.com/discochess/draughts/internal/search"
)

// Strategy selects the search policy.
type Strategy int

const (
	// Minimax fully expands every branch to the depth limit.
	Minimax Strategy = iota

	// AlphaBeta prunes branches that cannot influence the root value.
	AlphaBeta

	// AlphaBetaOrdering is AlphaBeta with children sorted so likely-strong
	// moves are visited first, producing earlier cutoffs. It selects a
	// move of the same value as AlphaBeta on any position.
	AlphaBetaOrdering
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case AlphaBetaOrdering:
		return "alphabeta-ordering"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a strategy name as printed by String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "minimax":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	case "alphabeta-ordering":
		return AlphaBetaOrdering, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrBadConfig, name)
	}
}

// Supported budget ranges. The recommended ranges are narrower: 1-3s and
// 5-9 plies.
const (
	MaxTimeLimit = 60 * time.Second
	MaxPlyLimit  = 32
)

// SearchConfig is the per-call search configuration. It is read once at the
// start of a search and never mutated by the engine.
type SearchConfig struct {
	Strategy  Strategy
	TimeLimit time.Duration
	MaxPly    int
}

// DefaultSearchConfig returns the recommended configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Strategy:  AlphaBetaOrdering,
		TimeLimit: 2 * time.Second,
		MaxPly:    6,
	}
}

// Validate rejects budgets outside the supported ranges before any search
// work begins.
func (c SearchConfig) Validate() error {
	if c.Strategy < Minimax || c.Strategy > AlphaBetaOrdering {
		return fmt.Errorf("%w: unknown strategy %d", ErrBadConfig, int(c.Strategy))
	}
	if c.TimeLimit <= 0 || c.TimeLimit > MaxTimeLimit {
		return fmt.Errorf("%w: time limit %s outside (0, %s]", ErrBadConfig, c.TimeLimit, MaxTimeLimit)
	}
	if c.MaxPly < 1 || c.MaxPly > MaxPlyLimit {
		return fmt.Errorf("%w: max ply %d outside [1, %d]", ErrBadConfig, c.MaxPly, MaxPlyLimit)
	}
	return nil
}

// searchOptions maps the public strategy selector onto the traversal
// policy flags.
func (c SearchConfig) searchOptions() search.Options {
	return search.Options{
		Prune:     c.Strategy != Minimax,
		Order:     c.Strategy == AlphaBetaOrdering,
		MaxPly:    c.MaxPly,
		TimeLimit: c.TimeLimit,
	}
}
