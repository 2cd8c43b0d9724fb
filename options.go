package draughts

import (
	"go.uber.org/zap"

	"github.com/discochess/draughts/internal/eval"
	"github.com/discochess/draughts/internal/stats"
)

// Option configures an Engine.
type Option interface {
	apply(*options)
}

// options holds the engine configuration.
type options struct {
	weights       eval.Weights
	evalCacheSize int
	stats         stats.Collector
	logger        *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		weights:       eval.DefaultWeights(),
		evalCacheSize: 4096,
		stats:         stats.NewNoop(),
		logger:        zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// Weights tunes the evaluation components. The zero value is not useful;
// start from DefaultWeights and adjust.
type Weights struct {
	Man      float64 // material value of a man
	King     float64 // material value of a king
	Mobility float64 // weight of the legal-move-count difference
	Center   float64 // weight of the central-square bonus
}

// DefaultWeights returns the stock evaluation tuning.
func DefaultWeights() Weights {
	return weightsFromEval(eval.DefaultWeights())
}

func weightsFromEval(w eval.Weights) Weights {
	return Weights{Man: w.Man, King: w.King, Mobility: w.Mobility, Center: w.Center}
}

func (w Weights) toEval() eval.Weights {
	return eval.Weights{Man: w.Man, King: w.King, Mobility: w.Mobility, Center: w.Center}
}

// WithWeights sets the evaluation weights.
// If not set, the stock tuning is used.
func WithWeights(w Weights) Option {
	return optionFunc(func(o *options) {
		o.weights = w.toEval()
	})
}

// WithEvalCacheSize sets the size of the LRU cache of static scores.
// Zero or negative disables the cache. Default is 4096 entries.
func WithEvalCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.evalCacheSize = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
