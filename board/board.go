// Package board implements the checkers position: an 8x8 grid of pieces,
// the side to move, and in-place move application with an exact inverse.
//
// Pieces live only on dark squares, those where (row+col)%2 == 1. Black
// starts on rows 0-2 and moves toward row 7; White starts on rows 5-7 and
// moves toward row 0. Coordinates are 0-based (row, col).
package board

import "strings"

// Size is the board dimension.
const Size = 8

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is the content of a single square.
type Piece uint8

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

// Color returns the owner of the piece. Only meaningful for non-empty pieces.
func (p Piece) Color() Color {
	if p == WhiteMan || p == WhiteKing {
		return White
	}
	return Black
}

// IsKing reports whether the piece is a crowned piece.
func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Rune returns the display character: '.', 'w', 'W', 'b' or 'B'.
func (p Piece) Rune() rune {
	switch p {
	case WhiteMan:
		return 'w'
	case WhiteKing:
		return 'W'
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	default:
		return '.'
	}
}

// Square addresses a board cell by 0-based row and column.
type Square struct {
	Row, Col int
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// Dark reports whether the square is playable (dark-square parity).
func (s Square) Dark() bool {
	return (s.Row+s.Col)%2 == 1
}

func (s Square) String() string {
	return "(" + itoa(s.Row) + "," + itoa(s.Col) + ")"
}

// itoa avoids pulling strconv in for single digits; rows and cols are 0-7.
func itoa(n int) string {
	if n >= 0 && n < 10 {
		return string(rune('0' + n))
	}
	return "?"
}

// Board is a checkers position. It is not safe for concurrent mutation;
// search explores branches via Apply/Undo pairs on a private clone.
type Board struct {
	cells [Size][Size]Piece
	side  Color
}

// New returns the standard starting position with White to move.
func New() *Board {
	b := &Board{side: White}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sq := Square{r, c}
			if !sq.Dark() {
				continue
			}
			switch {
			case r < 3:
				b.cells[r][c] = BlackMan
			case r > 4:
				b.cells[r][c] = WhiteMan
			}
		}
	}
	return b
}

// NewEmpty returns a board with no pieces and White to move.
// Intended for tests and custom setups.
func NewEmpty() *Board {
	return &Board{side: White}
}

// At returns the piece on the given square.
func (b *Board) At(sq Square) Piece {
	return b.cells[sq.Row][sq.Col]
}

// Set places a piece on the given square, replacing any previous content.
func (b *Board) Set(sq Square, p Piece) {
	b.cells[sq.Row][sq.Col] = p
}

// SideToMove returns the side that acts next.
func (b *Board) SideToMove() Color {
	return b.side
}

// SetSideToMove overrides the side to move. Intended for custom setups.
func (b *Board) SetSideToMove(c Color) {
	b.side = c
}

// Clone returns an independent copy of the position.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Pieces returns the squares occupied by the given side, in row-major order.
func (b *Board) Pieces(c Color) []Square {
	var out []Square
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			p := b.cells[r][col]
			if !p.IsEmpty() && p.Color() == c {
				out = append(out, Square{r, col})
			}
		}
	}
	return out
}

// Count returns the number of men and kings belonging to the given side.
func (b *Board) Count(c Color) (men, kings int) {
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			p := b.cells[r][col]
			if p.IsEmpty() || p.Color() != c {
				continue
			}
			if p.IsKing() {
				kings++
			} else {
				men++
			}
		}
	}
	return men, kings
}

// String renders the board with row and column indices, suitable for a
// terminal front-end.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for c := 0; c < Size; c++ {
		sb.WriteRune(rune('0' + c))
		sb.WriteByte(' ')
	}
	sb.WriteString("\n   +")
	sb.WriteString(strings.Repeat("--", Size))
	sb.WriteString("+\n")
	for r := 0; r < Size; r++ {
		sb.WriteRune(rune('0' + r))
		sb.WriteString(" | ")
		for c := 0; c < Size; c++ {
			sb.WriteRune(b.cells[r][c].Rune())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   +")
	sb.WriteString(strings.Repeat("--", Size))
	sb.WriteString("+")
	return sb.String()
}

// promotionRow is the farthest row from the given side's starting rows.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Size - 1
}

// crowned returns the king piece of the same color as a man.
func crowned(p Piece) Piece {
	if p == WhiteMan {
		return WhiteKing
	}
	return BlackKing
}
