package board

import (
	"fmt"
	"strings"
)

// Notation encodes the position as eight '/'-separated rows of the
// characters '.', 'w', 'W', 'b', 'B', followed by a space and the side to
// move ('w' or 'b'). Row 0 comes first. Example opening position:
//
//	.b.b.b.b/b.b.b.b./.b.b.b.b/......../......../w.w.w.w./.w.w.w.w/w.w.w.w. w
func (b *Board) Notation() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			sb.WriteRune(b.cells[r][c].Rune())
		}
	}
	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Parse decodes a position produced by Notation.
func Parse(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("board: notation needs placement and side to move, got %q", s)
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("board: expected %d rows, got %d", Size, len(rows))
	}
	b := NewEmpty()
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("board: row %d has %d squares, want %d", r, len(row), Size)
		}
		for c := 0; c < Size; c++ {
			var p Piece
			switch row[c] {
			case '.':
				continue
			case 'w':
				p = WhiteMan
			case 'W':
				p = WhiteKing
			case 'b':
				p = BlackMan
			case 'B':
				p = BlackKing
			default:
				return nil, fmt.Errorf("board: bad piece %q at row %d col %d", row[c], r, c)
			}
			sq := Square{r, c}
			if !sq.Dark() {
				return nil, fmt.Errorf("board: piece on light square %s", sq)
			}
			b.Set(sq, p)
		}
	}
	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, fmt.Errorf("board: bad side to move %q", fields[1])
	}
	return b, nil
}
