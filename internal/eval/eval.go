// Package eval scores checkers positions with a static heuristic: material,
// mobility and center control. Scores are antisymmetric between the two
// sides and deterministic for a fixed position.
package eval

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/discochess/draughts/board"
	"github.com/discochess/draughts/internal/movegen"
)

// Weights tunes the evaluation components.
type Weights struct {
	// Man and King are the material values per piece.
	Man  float64
	King float64

	// Mobility multiplies the legal-move-count difference.
	Mobility float64

	// Center scales a radial bonus that peaks on the four central squares.
	Center float64
}

// DefaultWeights returns the stock tuning.
func DefaultWeights() Weights {
	return Weights{
		Man:      1.0,
		King:     1.8,
		Mobility: 0.1,
		Center:   0.05,
	}
}

// Evaluator scores positions. It optionally caches scores by position
// notation; caching is a pure speedup and never changes a returned value.
type Evaluator struct {
	w     Weights
	cache *lru.Cache[string, float64]
}

// New creates an Evaluator. cacheSize <= 0 disables the score cache.
func New(w Weights, cacheSize int) (*Evaluator, error) {
	e := &Evaluator{w: w}
	if cacheSize > 0 {
		c, err := lru.New[string, float64](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating eval cache: %w", err)
		}
		e.cache = c
	}
	return e, nil
}

// Weights returns the active tuning.
func (e *Evaluator) Weights() Weights {
	return e.w
}

// Score returns the heuristic value of the position from the given side's
// perspective; higher is better for that side. For any fixed position,
// Score(b, White) == -Score(b, Black).
func (e *Evaluator) Score(b *board.Board, perspective board.Color) float64 {
	white := e.scoreWhite(b)
	if perspective == board.Black {
		return -white
	}
	return white
}

// scoreWhite computes the score from White's perspective, consulting the
// cache when enabled.
func (e *Evaluator) scoreWhite(b *board.Board) float64 {
	var key string
	if e.cache != nil {
		key = b.Notation()
		if v, ok := e.cache.Get(key); ok {
			return v
		}
	}

	var white, black float64
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			p := b.At(board.Square{Row: r, Col: c})
			if p.IsEmpty() {
				continue
			}
			val := e.w.Man
			if p.IsKing() {
				val = e.w.King
			}
			val += e.centerBonus(r, c)
			if p.Color() == board.White {
				white += val
			} else {
				black += val
			}
		}
	}

	mobility := e.w.Mobility * float64(len(movegen.Moves(b, board.White))-len(movegen.Moves(b, board.Black)))
	score := white - black + mobility

	if e.cache != nil {
		e.cache.Add(key, score)
	}
	return score
}

// centerBonus rewards squares near the middle of the board; it peaks at the
// four central squares and falls off with taxicab distance from the center.
func (e *Evaluator) centerBonus(r, c int) float64 {
	dist := (math.Abs(3.5-float64(r)) + math.Abs(3.5-float64(c))) / 2.0
	return e.w.Center * (3.0 - dist)
}
