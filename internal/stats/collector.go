// Package stats provides a unified interface for collecting engine metrics.
package stats

// Metric names used throughout the engine.
const (
	// Search metrics.
	MetricSearches       = "draughts_searches_total"
	MetricNodesExpanded  = "draughts_nodes_expanded_total"
	MetricNodesGenerated = "draughts_nodes_generated_total"
	MetricPrunes         = "draughts_prunes_total"
	MetricSearchSeconds  = "draughts_search_seconds"
	MetricSearchDepth    = "draughts_search_depth"

	// Front-end facing metrics.
	MetricMoveGenCalls = "draughts_movegen_calls_total"
	MetricIllegalMoves = "draughts_illegal_moves_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
