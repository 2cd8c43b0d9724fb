package eval

import (
	"math"
	"testing"

	"github.com/discochess/draughts/board"
)

func newEvaluator(t *testing.T, cacheSize int) *Evaluator {
	t.Helper()
	e, err := New(DefaultWeights(), cacheSize)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestScore_Antisymmetry(t *testing.T) {
	e := newEvaluator(t, 0)

	mid := board.NewEmpty()
	mid.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	mid.Set(board.Square{Row: 4, Col: 3}, board.BlackMan)
	mid.Set(board.Square{Row: 2, Col: 3}, board.BlackKing)

	for _, b := range []*board.Board{board.New(), mid} {
		w := e.Score(b, board.White)
		bl := e.Score(b, board.Black)
		if w != -bl {
			t.Errorf("Score(White) = %v, Score(Black) = %v, want negation", w, bl)
		}
	}
}

func TestScore_OpeningIsBalanced(t *testing.T) {
	e := newEvaluator(t, 0)
	if got := e.Score(board.New(), board.White); math.Abs(got) > 1e-9 {
		t.Errorf("Score(opening, White) = %v, want 0", got)
	}
}

func TestScore_MaterialAdvantage(t *testing.T) {
	e := newEvaluator(t, 0)

	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 5, Col: 4}, board.WhiteMan)
	b.Set(board.Square{Row: 2, Col: 3}, board.BlackMan)

	if got := e.Score(b, board.White); got <= 0 {
		t.Errorf("Score with extra man = %v, want > 0", got)
	}
}

func TestScore_KingWorthMoreThanMan(t *testing.T) {
	e := newEvaluator(t, 0)

	man := board.NewEmpty()
	man.Set(board.Square{Row: 4, Col: 3}, board.WhiteMan)
	man.Set(board.Square{Row: 0, Col: 1}, board.BlackKing)

	king := board.NewEmpty()
	king.Set(board.Square{Row: 4, Col: 3}, board.WhiteKing)
	king.Set(board.Square{Row: 0, Col: 1}, board.BlackKing)

	if e.Score(king, board.White) <= e.Score(man, board.White) {
		t.Error("king not scored above man on the same square")
	}
}

func TestScore_CenterPreferred(t *testing.T) {
	e := newEvaluator(t, 0)

	center := board.NewEmpty()
	center.Set(board.Square{Row: 3, Col: 4}, board.WhiteKing)

	edge := board.NewEmpty()
	edge.Set(board.Square{Row: 0, Col: 7}, board.WhiteKing)

	// The edge king also has fewer moves, so both center and mobility
	// terms point the same way.
	if e.Score(center, board.White) <= e.Score(edge, board.White) {
		t.Error("central king not scored above corner king")
	}
}

func TestScore_CacheDoesNotChangeValues(t *testing.T) {
	plain := newEvaluator(t, 0)
	cached := newEvaluator(t, 64)

	b := board.New()
	b.Apply(board.Move{From: board.Square{Row: 5, Col: 2}, Path: []board.Square{{Row: 4, Col: 3}}})

	want := plain.Score(b, board.White)
	for i := 0; i < 3; i++ { // repeated calls hit the cache
		if got := cached.Score(b, board.White); got != want {
			t.Fatalf("cached Score() = %v, want %v", got, want)
		}
	}
}
