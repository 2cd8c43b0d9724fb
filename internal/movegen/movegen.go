// Package movegen produces the exhaustive set of legal moves for one side,
// enforcing the forced-capture rule and maximal multi-jump chains.
//
// Men step and capture toward the opponent's back row only; kings move and
// capture in all four diagonal directions. If any piece of the side has a
// capture available, only capture moves are legal. A capture chain ends only
// when no further jump exists from its landing square; the piece keeps its
// rank for the whole chain and promotes, if at all, on the final square.
package movegen

import "github.com/discochess/draughts/board"

type delta struct{ dr, dc int }

var allDirs = []delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// directions returns the diagonals the piece may move and capture along.
func directions(p board.Piece) []delta {
	if p.IsKing() {
		return allDirs
	}
	if p.Color() == board.White {
		return allDirs[:2] // toward row 0
	}
	return allDirs[2:] // toward row 7
}

// Moves returns every legal move for the given side, in a deterministic
// order: pieces row-major, directions in a fixed order, capture chains
// depth-first. The board is not modified.
func Moves(b *board.Board, side board.Color) []board.Move {
	var captures, steps []board.Move

	for _, from := range b.Pieces(side) {
		p := b.At(from)
		n := len(captures)
		chains(b, p, from, from, nil, nil, map[board.Square]bool{from: true}, &captures)
		if len(captures) > n {
			continue // this piece must jump; skip its steps
		}
		for _, d := range directions(p) {
			to := board.Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
			if to.InBounds() && b.At(to).IsEmpty() {
				steps = append(steps, board.Move{From: from, Path: []board.Square{to}})
			}
		}
	}

	if len(captures) > 0 {
		return captures
	}
	return steps
}

// HasCapture reports whether any piece of the side has a jump available.
func HasCapture(b *board.Board, side board.Color) bool {
	for _, from := range b.Pieces(side) {
		p := b.At(from)
		for _, d := range directions(p) {
			mid := board.Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
			land := board.Square{Row: from.Row + 2*d.dr, Col: from.Col + 2*d.dc}
			if !land.InBounds() {
				continue
			}
			victim := b.At(mid)
			if !victim.IsEmpty() && victim.Color() != side && b.At(land).IsEmpty() {
				return true
			}
		}
	}
	return false
}

// chains walks every maximal jump chain for one piece without mutating the
// board: a jump is available when the jumped square holds an opponent piece
// not already captured in this chain, and the landing square is empty (or
// was emptied by an earlier capture in this chain) and not previously
// visited. Terminal chains are appended to out.
func chains(b *board.Board, p board.Piece, from, cur board.Square,
	seq, captured []board.Square, visited map[board.Square]bool, out *[]board.Move) {

	side := p.Color()
	extended := false
	for _, d := range directions(p) {
		mid := board.Square{Row: cur.Row + d.dr, Col: cur.Col + d.dc}
		land := board.Square{Row: cur.Row + 2*d.dr, Col: cur.Col + 2*d.dc}
		if !land.InBounds() || visited[land] {
			continue
		}
		victim := b.At(mid)
		if victim.IsEmpty() || victim.Color() == side || contains(captured, mid) {
			continue
		}
		if !b.At(land).IsEmpty() && !contains(captured, land) {
			continue
		}
		extended = true
		visited[land] = true
		chains(b, p, from, land,
			append(append([]board.Square(nil), seq...), land),
			append(append([]board.Square(nil), captured...), mid),
			visited, out)
		delete(visited, land)
	}

	if !extended && len(captured) > 0 {
		*out = append(*out, board.Move{From: from, Path: seq, Captures: captured})
	}
}

func contains(squares []board.Square, sq board.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
