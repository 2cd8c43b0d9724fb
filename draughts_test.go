package draughts

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/draughts/board"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestLegalMoves_Opening(t *testing.T) {
	e := newEngine(t)
	if got := len(e.LegalMoves(NewGame())); got != 7 {
		t.Errorf("LegalMoves(opening) = %d moves, want 7", got)
	}
}

func TestApplyMove_RejectsIllegal(t *testing.T) {
	e := newEngine(t)
	b := NewGame()
	before := b.Notation()

	// Diagonal into an occupied square.
	m := board.Move{From: board.Square{Row: 6, Col: 1}, Path: []board.Square{{Row: 5, Col: 0}}}
	err := e.ApplyMove(b, m)
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("ApplyMove() error = %v, want ErrIllegalMove", err)
	}
	if got := b.Notation(); got != before {
		t.Errorf("ApplyMove() mutated the board on rejection: %q, want %q", got, before)
	}
}

func TestApplyMove_AcceptsLegal(t *testing.T) {
	e := newEngine(t)
	b := NewGame()

	m := board.Move{From: board.Square{Row: 5, Col: 0}, Path: []board.Square{{Row: 4, Col: 1}}}
	if err := e.ApplyMove(b, m); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if b.At(board.Square{Row: 4, Col: 1}) != board.WhiteMan {
		t.Error("legal move was not applied")
	}
	if b.SideToMove() != board.Black {
		t.Errorf("SideToMove() = %v after White's move, want Black", b.SideToMove())
	}
}

func TestApplyMove_EnforcesForcedCapture(t *testing.T) {
	e := newEngine(t)

	b := board.NewEmpty()
	b.Set(board.Square{Row: 4, Col: 3}, board.WhiteMan)
	b.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)
	b.Set(board.Square{Row: 6, Col: 1}, board.WhiteMan)

	// Quiet move while a capture exists.
	quiet := board.Move{From: board.Square{Row: 6, Col: 1}, Path: []board.Square{{Row: 5, Col: 0}}}
	if err := e.ApplyMove(b, quiet); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("ApplyMove(quiet) error = %v, want ErrIllegalMove", err)
	}

	jump := board.Move{
		From:     board.Square{Row: 4, Col: 3},
		Path:     []board.Square{{Row: 2, Col: 1}},
		Captures: []board.Square{{Row: 3, Col: 2}},
	}
	if err := e.ApplyMove(b, jump); err != nil {
		t.Errorf("ApplyMove(jump) error = %v", err)
	}
}

func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"default", DefaultSearchConfig(), false},
		{"minimax shallow", SearchConfig{Strategy: Minimax, TimeLimit: time.Second, MaxPly: 1}, false},
		{"zero time", SearchConfig{Strategy: AlphaBeta, TimeLimit: 0, MaxPly: 6}, true},
		{"excessive time", SearchConfig{Strategy: AlphaBeta, TimeLimit: 2 * time.Minute, MaxPly: 6}, true},
		{"zero ply", SearchConfig{Strategy: AlphaBeta, TimeLimit: time.Second, MaxPly: 0}, true},
		{"excessive ply", SearchConfig{Strategy: AlphaBeta, TimeLimit: time.Second, MaxPly: 64}, true},
		{"unknown strategy", SearchConfig{Strategy: Strategy(9), TimeLimit: time.Second, MaxPly: 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrBadConfig) {
				t.Errorf("Validate() error = %v, want ErrBadConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestSearch_RejectsBadConfig(t *testing.T) {
	e := newEngine(t)
	_, err := e.Search(context.Background(), NewGame(), SearchConfig{Strategy: AlphaBeta, TimeLimit: -time.Second, MaxPly: 6})
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("Search() error = %v, want ErrBadConfig", err)
	}
}

func TestSearch_TerminalPosition(t *testing.T) {
	e := newEngine(t)

	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 0}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 1}, board.BlackMan)
	b.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)

	_, err := e.Search(context.Background(), b, DefaultSearchConfig())
	if !errors.Is(err, ErrNoLegalMove) {
		t.Errorf("Search() error = %v, want ErrNoLegalMove", err)
	}
}

func TestSearch_ReturnsLegalMove(t *testing.T) {
	e := newEngine(t, WithLogger(zap.NewNop()))
	b := NewGame()

	cfg := SearchConfig{Strategy: AlphaBetaOrdering, TimeLimit: 5 * time.Second, MaxPly: 4}
	res, err := e.Search(context.Background(), b, cfg)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if res.Strategy != AlphaBetaOrdering {
		t.Errorf("Strategy = %v, want AlphaBetaOrdering", res.Strategy)
	}
	if res.Depth != cfg.MaxPly {
		t.Errorf("Depth = %d, want %d", res.Depth, cfg.MaxPly)
	}
	if res.NodesExpanded <= 0 || res.NodesGenerated <= 0 {
		t.Errorf("counters not populated: %+v", res)
	}
	if err := e.ApplyMove(b, res.Move); err != nil {
		t.Errorf("selected move %s is not legal: %v", res.Move, err)
	}
}

func TestOutcome(t *testing.T) {
	e := newEngine(t)

	if got := e.Outcome(NewGame()); got != InProgress {
		t.Errorf("Outcome(opening) = %v, want InProgress", got)
	}

	// White to move with no moves: Black wins.
	blocked := board.NewEmpty()
	blocked.Set(board.Square{Row: 5, Col: 0}, board.WhiteMan)
	blocked.Set(board.Square{Row: 4, Col: 1}, board.BlackMan)
	blocked.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)
	if got := e.Outcome(blocked); got != BlackWins {
		t.Errorf("Outcome(blocked White) = %v, want BlackWins", got)
	}

	// Black to move with no pieces: White wins.
	bare := board.NewEmpty()
	bare.Set(board.Square{Row: 4, Col: 3}, board.WhiteKing)
	bare.SetSideToMove(board.Black)
	if got := e.Outcome(bare); got != WhiteWins {
		t.Errorf("Outcome(bare Black) = %v, want WhiteWins", got)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{Minimax, AlphaBeta, AlphaBetaOrdering} {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s, got, s)
		}
	}
	if _, err := ParseStrategy("negamax"); !errors.Is(err, ErrBadConfig) {
		t.Errorf("ParseStrategy(negamax) error = %v, want ErrBadConfig", err)
	}
}

func TestWithWeights(t *testing.T) {
	w := DefaultWeights()
	w.King = 3.0
	e := newEngine(t, WithWeights(w))
	if got := e.ev.Weights().King; got != 3.0 {
		t.Errorf("evaluator king weight = %v, want 3.0", got)
	}
}
