package draughts

import (
	"time"

	"github.com/discochess/draughts/board"
	"github.com/discochess/draughts/internal/search"
)

// SearchResult is the outcome of one Search call. It is produced fresh per
// call and owned by the caller.
type SearchResult struct {
	// Move is the selected move for the side to move.
	Move board.Move

	// Value is the backed-up score of Move from the searching side's
	// perspective; +Inf and -Inf mark proven wins and losses. Zero when
	// Depth is 0: no depth completed, so the move carries no value.
	Value float64

	// Strategy echoes the policy that produced this result.
	Strategy Strategy

	// Depth is the deepest fully completed ply depth. It can be lower
	// than the configured MaxPly when the time budget ran out.
	Depth int

	// NodesExpanded is the number of nodes whose children were generated
	// and recursed into.
	NodesExpanded int64

	// NodesGenerated is the total number of child moves produced,
	// including moves never visited because of pruning.
	NodesGenerated int64

	// Prunes is the number of alpha-beta cutoff events.
	Prunes int64

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration

	// TimedOut reports whether the time budget cut the search short.
	TimedOut bool

	// OrderingGain estimates, in percent, the prunes saved by move
	// ordering at shallow depth. Zero unless the ordering strategy ran.
	OrderingGain float64
}

// resultFromStats converts the internal search stats to the public type.
func resultFromStats(s Strategy, st *search.Stats) *SearchResult {
	return &SearchResult{
		Move:           st.Move,
		Value:          st.Value,
		Strategy:       s,
		Depth:          st.Depth,
		NodesExpanded:  st.NodesExpanded,
		NodesGenerated: st.NodesGenerated,
		Prunes:         st.Prunes,
		Elapsed:        st.Elapsed,
		TimedOut:       st.TimedOut,
		OrderingGain:   st.OrderingGain,
	}
}
