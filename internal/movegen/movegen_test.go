package movegen

import (
	"testing"

	"github.com/discochess/draughts/board"
)

func TestMoves_OpeningPosition(t *testing.T) {
	b := board.New()

	moves := Moves(b, board.White)
	if len(moves) != 7 {
		t.Fatalf("Moves(White) returned %d moves, want 7", len(moves))
	}
	for _, m := range moves {
		if m.IsCapture() {
			t.Errorf("opening move %s is a capture", m)
		}
		if len(m.Path) != 1 {
			t.Errorf("opening move %s has %d landings, want 1", m, len(m.Path))
		}
	}

	// Black has the mirror-image seven moves.
	if got := len(Moves(b, board.Black)); got != 7 {
		t.Errorf("Moves(Black) returned %d moves, want 7", got)
	}
}

func TestMoves_CaptureIsForced(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 4, Col: 3}, board.WhiteMan)
	b.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)
	// A quiet alternative exists elsewhere, but must be excluded.
	b.Set(board.Square{Row: 6, Col: 1}, board.WhiteMan)

	moves := Moves(b, board.White)
	if len(moves) != 1 {
		t.Fatalf("Moves(White) = %v, want exactly the capture", moves)
	}
	m := moves[0]
	if !m.IsCapture() {
		t.Fatalf("move %s is not a capture", m)
	}
	if m.From != (board.Square{Row: 4, Col: 3}) || m.To() != (board.Square{Row: 2, Col: 1}) {
		t.Errorf("capture = %s, want (4,3)x(2,1)", m)
	}
	if len(m.Captures) != 1 || m.Captures[0] != (board.Square{Row: 3, Col: 2}) {
		t.Errorf("captures = %v, want [(3,2)]", m.Captures)
	}
}

func TestMoves_MultiJumpIsMaximal(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 3}, board.BlackMan)
	b.Set(board.Square{Row: 2, Col: 3}, board.BlackMan)

	moves := Moves(b, board.White)
	if len(moves) != 1 {
		t.Fatalf("Moves(White) = %v, want exactly one chain", moves)
	}
	m := moves[0]
	wantPath := []board.Square{{Row: 3, Col: 4}, {Row: 1, Col: 2}}
	if len(m.Path) != 2 || m.Path[0] != wantPath[0] || m.Path[1] != wantPath[1] {
		t.Errorf("chain path = %v, want %v", m.Path, wantPath)
	}
	if len(m.Captures) != 2 {
		t.Errorf("chain captured %d pieces, want 2", len(m.Captures))
	}
}

func TestMoves_BranchingChainsAllEnumerated(t *testing.T) {
	// From (5,2) the first jump reaches (3,4); from there two victims
	// offer two distinct continuations.
	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 3}, board.BlackMan)
	b.Set(board.Square{Row: 2, Col: 3}, board.BlackMan)
	b.Set(board.Square{Row: 2, Col: 5}, board.BlackMan)

	moves := Moves(b, board.White)
	if len(moves) != 2 {
		t.Fatalf("Moves(White) returned %d chains, want 2: %v", len(moves), moves)
	}
	for _, m := range moves {
		if len(m.Captures) != 2 {
			t.Errorf("chain %s captured %d pieces, want 2", m, len(m.Captures))
		}
	}
}

func TestMoves_ManNeverCapturesBackward(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 3, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 3}, board.BlackMan) // behind the man

	moves := Moves(b, board.White)
	for _, m := range moves {
		if m.IsCapture() {
			t.Errorf("man captured backward: %s", m)
		}
	}
}

func TestMoves_KingCapturesBackward(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 3, Col: 2}, board.WhiteKing)
	b.Set(board.Square{Row: 4, Col: 3}, board.BlackMan)

	moves := Moves(b, board.White)
	if len(moves) != 1 {
		t.Fatalf("Moves(White) = %v, want exactly the backward capture", moves)
	}
	if moves[0].To() != (board.Square{Row: 5, Col: 4}) {
		t.Errorf("capture lands on %v, want (5,4)", moves[0].To())
	}
}

func TestMoves_BlockedSideHasNoMoves(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 0}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 1}, board.BlackMan)
	b.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)

	if moves := Moves(b, board.White); len(moves) != 0 {
		t.Errorf("Moves(White) = %v, want none", moves)
	}
}

func TestHasCapture(t *testing.T) {
	b := board.New()
	if HasCapture(b, board.White) {
		t.Error("HasCapture(White) = true on the opening position")
	}

	c := board.NewEmpty()
	c.Set(board.Square{Row: 4, Col: 3}, board.WhiteMan)
	c.Set(board.Square{Row: 3, Col: 2}, board.BlackMan)
	if !HasCapture(c, board.White) {
		t.Error("HasCapture(White) = false with a jump available")
	}
	if HasCapture(c, board.Black) {
		t.Error("HasCapture(Black) = true with no jump available")
	}
}

func TestMoves_DoesNotMutateBoard(t *testing.T) {
	b := board.NewEmpty()
	b.Set(board.Square{Row: 5, Col: 2}, board.WhiteMan)
	b.Set(board.Square{Row: 4, Col: 3}, board.BlackMan)
	b.Set(board.Square{Row: 2, Col: 3}, board.BlackMan)
	before := b.Notation()

	Moves(b, board.White)

	if got := b.Notation(); got != before {
		t.Errorf("Moves() mutated the board: %q, want %q", got, before)
	}
}
