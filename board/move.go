package board

import "strings"

// Move is a single turn: a start square and one or more landing squares.
// A simple step has a one-element Path and no Captures; a capture chain has
// one landing square and one captured square per jump, in order.
//
// A Move is only meaningful relative to the exact position it was generated
// from and must not be reused after the board changes.
type Move struct {
	From     Square
	Path     []Square
	Captures []Square
}

// To returns the final landing square.
func (m Move) To() Square {
	return m.Path[len(m.Path)-1]
}

// IsCapture reports whether the move captures at least one piece.
func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Equal reports whether two moves describe the same start, landing sequence
// and captures.
func (m Move) Equal(o Move) bool {
	if m.From != o.From || len(m.Path) != len(o.Path) || len(m.Captures) != len(o.Captures) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != o.Path[i] {
			return false
		}
	}
	for i := range m.Captures {
		if m.Captures[i] != o.Captures[i] {
			return false
		}
	}
	return true
}

// String renders a step as "(5,0)-(4,1)" and a jump chain as
// "(5,0)x(3,2)x(1,4)".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	for _, sq := range m.Path {
		sb.WriteString(sep)
		sb.WriteString(sq.String())
	}
	return sb.String()
}

// Captured records a removed piece so Undo can restore it.
type Captured struct {
	Sq    Square
	Piece Piece
}

// Undo holds the exact inverse of one applied move.
type Undo struct {
	from, to Square
	moved    Piece // the piece before any promotion
	promoted bool
	captured []Captured
	prevSide Color
}

// Apply mutates the board by playing the move: the piece leaves From, every
// captured piece is removed, the piece lands on the final square, promoting
// to king if that square is the farthest row, and the side to move flips.
//
// Apply does not validate legality; callers outside the engine should go
// through the engine's ApplyMove. The returned Undo reverses the mutation
// exactly.
func (b *Board) Apply(m Move) Undo {
	p := b.At(m.From)
	u := Undo{
		from:     m.From,
		to:       m.To(),
		moved:    p,
		prevSide: b.side,
	}
	b.Set(m.From, Empty)
	for _, sq := range m.Captures {
		u.captured = append(u.captured, Captured{Sq: sq, Piece: b.At(sq)})
		b.Set(sq, Empty)
	}
	if !p.IsKing() && u.to.Row == promotionRow(p.Color()) {
		p = crowned(p)
		u.promoted = true
	}
	b.Set(u.to, p)
	b.side = b.side.Opponent()
	return u
}

// Undo reverses a move applied to this board. Undos must be replayed in
// reverse order of their Applys.
func (b *Board) Undo(u Undo) {
	b.Set(u.to, Empty)
	b.Set(u.from, u.moved)
	for _, c := range u.captured {
		b.Set(c.Sq, c.Piece)
	}
	b.side = u.prevSide
}
