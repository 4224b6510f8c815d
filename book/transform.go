package book

import (
	"github.com/domino14/reversi/move"
)

// Every stored book line starts with the canonical first move f5, but the
// real game may have opened with any of the four symmetric cells. A
// Transformer maps real-board coordinates into the canonical f5-anchored
// system and back; it is fixed for the whole game by the first move played.
type Transformer struct {
	rotate int
	mirror bool
}

// NewTransformer builds the transform for a game whose first move was
// first. The three non-canonical openings each select a rotation (and for
// two of them a mirror) that carries them onto f5; anything else, including
// f5 itself, maps through the identity.
func NewTransformer(first move.Point) *Transformer {
	t := &Transformer{}
	switch first {
	case move.Point{X: 4, Y: 3}: // d3
		t.rotate = 1
		t.mirror = true
	case move.Point{X: 3, Y: 4}: // c4
		t.rotate = 2
	case move.Point{X: 5, Y: 6}: // e6
		t.rotate = -1
		t.mirror = true
	}
	return t
}

// Normalize maps a real-board coordinate into the canonical system.
func (t *Transformer) Normalize(p move.Point) move.Point {
	q := rotatePoint(p, t.rotate)
	if t.mirror {
		q = mirrorPoint(q)
	}
	return q
}

// Denormalize is the exact inverse of Normalize: un-mirror first, then
// rotate back.
func (t *Transformer) Denormalize(p move.Point) move.Point {
	q := p
	if t.mirror {
		q = mirrorPoint(q)
	}
	return rotatePoint(q, -t.rotate)
}

// rotatePoint rotates p by rotate quarter-turns around the board center.
func rotatePoint(p move.Point, rotate int) move.Point {
	rotate %= 4
	if rotate < 0 {
		rotate += 4
	}
	switch rotate {
	case 1:
		return move.Point{X: p.Y, Y: boardSize - p.X + 1}
	case 2:
		return move.Point{X: boardSize - p.X + 1, Y: boardSize - p.Y + 1}
	case 3:
		return move.Point{X: boardSize - p.Y + 1, Y: p.X}
	default:
		return p
	}
}

// mirrorPoint reflects p across the vertical center line.
func mirrorPoint(p move.Point) move.Point {
	return move.Point{X: boardSize - p.X + 1, Y: p.Y}
}
