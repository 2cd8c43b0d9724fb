// Package arena plays the engine against itself to compare search
// strategies on identical positions.
package arena

import (
	"context"
	"fmt"
	"time"

	"github.com/discochess/draughts"
	"github.com/discochess/draughts/board"
)

// Sample is the instrumentation from searching one position with one
// strategy.
type Sample struct {
	Strategy       string
	Depth          int
	NodesExpanded  int64
	NodesGenerated int64
	Prunes         int64
	Elapsed        time.Duration
}

// Arena drives self-play games and per-strategy measurements through one
// engine.
type Arena struct {
	engine *draughts.Engine
}

// New creates an Arena around the given engine.
func New(e *draughts.Engine) *Arena {
	return &Arena{engine: e}
}

// SamplePositions plays one game of the engine against itself with the
// given config and returns a clone of the position before each move, up to
// maxMoves. The positions form a realistic mix of opening, midgame and
// endgame states to measure strategies on.
func (a *Arena) SamplePositions(ctx context.Context, cfg draughts.SearchConfig, maxMoves int) ([]*board.Board, error) {
	b := draughts.NewGame()
	var positions []*board.Board

	for move := 0; move < maxMoves; move++ {
		if a.engine.Outcome(b) != draughts.InProgress {
			break
		}
		positions = append(positions, b.Clone())

		res, err := a.engine.Search(ctx, b, cfg)
		if err != nil {
			return nil, fmt.Errorf("self-play move %d: %w", move, err)
		}
		if err := a.engine.ApplyMove(b, res.Move); err != nil {
			return nil, fmt.Errorf("self-play move %d: %w", move, err)
		}
	}
	return positions, nil
}

// Measure searches every position with the given config and returns one
// sample per position.
func (a *Arena) Measure(ctx context.Context, cfg draughts.SearchConfig, positions []*board.Board) ([]Sample, error) {
	samples := make([]Sample, 0, len(positions))
	for i, b := range positions {
		res, err := a.engine.Search(ctx, b, cfg)
		if err != nil {
			return nil, fmt.Errorf("measuring position %d: %w", i, err)
		}
		samples = append(samples, Sample{
			Strategy:       cfg.Strategy.String(),
			Depth:          res.Depth,
			NodesExpanded:  res.NodesExpanded,
			NodesGenerated: res.NodesGenerated,
			Prunes:         res.Prunes,
			Elapsed:        res.Elapsed,
		})
	}
	return samples, nil
}

// NodesExpanded extracts the expanded-node counts as floats for the
// statistics package.
func NodesExpanded(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.NodesExpanded)
	}
	return out
}
