package board

import (
	"fmt"

	"github.com/domino14/reversi/move"
)

const (
	// BoardSize is the side length of the playable grid.
	BoardSize = 8
	// MaxTurns is the number of discs that can ever be placed.
	MaxTurns = BoardSize*BoardSize - 4
)

// Cell contents. The two colors are negations of each other, so the opponent
// of a color c is always -c.
const (
	White = -1
	Empty = 0
	Black = 1
	Wall  = 2
)

// Direction flags for the legal-move cache. A cell's mask has a bit set for
// every direction in which placing there flips at least one opposing disc.
const (
	dirNone       = 0
	dirUpper      = 1
	dirUpperLeft  = 2
	dirLeft       = 4
	dirLowerLeft  = 8
	dirLower      = 16
	dirLowerRight = 32
	dirRight      = 64
	dirUpperRight = 128
)

type direction struct {
	dx, dy int
	flag   int
}

var directions = [8]direction{
	{0, -1, dirUpper},
	{-1, -1, dirUpperLeft},
	{-1, 0, dirLeft},
	{-1, 1, dirLowerLeft},
	{0, 1, dirLower},
	{1, 1, dirLowerRight},
	{1, 0, dirRight},
	{1, -1, dirUpperRight},
}

// A Board is a complete reversi position: the grid, whose turn it is, how
// many discs each side has, a per-turn cache of legal moves, and a change log
// that makes every mutation reversible. The grid is surrounded by a one-cell
// ring of Wall sentinels so that the flip walks never need bounds checks.
//
// A Board is exclusively owned by its caller; a search mutates it in place
// with a strict Move-then-Undo discipline.
type Board struct {
	rawBoard     [BoardSize + 2][BoardSize + 2]int
	turns        int
	currentColor int

	// updateLog has one entry per applied ply. A non-empty entry lists the
	// cells that ply changed, placed disc first; an empty entry marks a pass.
	// Only the newest entry may ever be popped.
	updateLog [][]move.Point

	movablePos [MaxTurns + 1][]move.Point
	movableDir [MaxTurns + 1][BoardSize + 2][BoardSize + 2]int

	// disc counts indexed by color+1 (White, Empty, Black).
	discs [3]int
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets the board to the starting position: the wall ring, the four
// center discs, and Black to move.
func (b *Board) Init() {
	for x := 0; x < BoardSize+2; x++ {
		for y := 0; y < BoardSize+2; y++ {
			if x == 0 || x == BoardSize+1 || y == 0 || y == BoardSize+1 {
				b.rawBoard[x][y] = Wall
			} else {
				b.rawBoard[x][y] = Empty
			}
		}
	}
	b.rawBoard[4][4] = White
	b.rawBoard[5][5] = White
	b.rawBoard[4][5] = Black
	b.rawBoard[5][4] = Black

	b.discs[Black+1] = 2
	b.discs[White+1] = 2
	b.discs[Empty+1] = BoardSize*BoardSize - 4

	b.turns = 0
	b.currentColor = Black
	b.updateLog = b.updateLog[:0]
	b.initMovable()
}

// checkMobility returns the direction mask for placing a disc of the given
// color at p: a flag for each direction holding a contiguous run of opposing
// discs capped by a same-colored disc. The wall ring terminates every walk.
func (b *Board) checkMobility(p move.Point, color int) int {
	if b.rawBoard[p.X][p.Y] != Empty {
		return dirNone
	}
	dir := dirNone
	for _, d := range directions {
		if b.rawBoard[p.X+d.dx][p.Y+d.dy] != -color {
			continue
		}
		x := p.X + 2*d.dx
		y := p.Y + 2*d.dy
		for b.rawBoard[x][y] == -color {
			x += d.dx
			y += d.dy
		}
		if b.rawBoard[x][y] == color {
			dir |= d.flag
		}
	}
	return dir
}

// initMovable rebuilds the legal-move cache for the current turn. It always
// allocates a fresh position list; a search may still be iterating the slice
// it fetched for this turn index before a Move/Undo pair.
func (b *Board) initMovable() {
	pos := make([]move.Point, 0, 16)
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			p := move.Point{X: x, Y: y}
			dir := b.checkMobility(p, b.currentColor)
			if dir != dirNone {
				pos = append(pos, p)
			}
			b.movableDir[b.turns][x][y] = dir
		}
	}
	b.movablePos[b.turns] = pos
}

// flipDiscs places the current color at p, flips every run flagged in the
// cached direction mask, updates the disc counts, and logs the changed cells.
// Legality has already been established by the cache, so every walk is
// guaranteed to end on a same-colored disc.
func (b *Board) flipDiscs(p move.Point) {
	dir := b.movableDir[b.turns][p.X][p.Y]

	update := make([]move.Point, 0, 8)
	b.rawBoard[p.X][p.Y] = b.currentColor
	update = append(update, p)

	for _, d := range directions {
		if dir&d.flag == dirNone {
			continue
		}
		x := p.X + d.dx
		y := p.Y + d.dy
		for b.rawBoard[x][y] != b.currentColor {
			b.rawBoard[x][y] = b.currentColor
			update = append(update, move.Point{X: x, Y: y})
			x += d.dx
			y += d.dy
		}
	}

	discdiff := len(update)
	b.discs[b.currentColor+1] += discdiff
	b.discs[-b.currentColor+1] -= discdiff - 1
	b.discs[Empty+1]--
	b.updateLog = append(b.updateLog, update)
}

// Move places a disc for the side to move at p. It returns false, leaving
// the board untouched, if p is out of range or not a cached legal move.
func (b *Board) Move(p move.Point) bool {
	if p.X <= 0 || p.X > BoardSize || p.Y <= 0 || p.Y > BoardSize {
		return false
	}
	if b.movableDir[b.turns][p.X][p.Y] == dirNone {
		return false
	}
	b.flipDiscs(p)
	b.turns++
	b.currentColor = -b.currentColor
	b.initMovable()
	return true
}

// Pass gives the turn to the opponent. It fails if the side to move still
// has a legal move, or if the game is already over. A pass occupies a slot
// in the change log but does not advance the turn counter.
func (b *Board) Pass() bool {
	if len(b.movablePos[b.turns]) != 0 {
		return false
	}
	if b.IsGameOver() {
		return false
	}
	b.currentColor = -b.currentColor
	b.updateLog = append(b.updateLog, []move.Point{})
	b.initMovable()
	return true
}

// Undo reverts the most recent Move or Pass. It fails at the start of the
// game, when there is nothing left to revert.
func (b *Board) Undo() bool {
	if len(b.updateLog) == 0 {
		return false
	}
	b.currentColor = -b.currentColor

	update := b.updateLog[len(b.updateLog)-1]
	b.updateLog = b.updateLog[:len(b.updateLog)-1]

	if len(update) == 0 {
		// The reverted ply was a pass, which can only have happened with no
		// legal moves on the board. Restore that cache state directly.
		b.movablePos[b.turns] = nil
		for x := 1; x <= BoardSize; x++ {
			for y := 1; y <= BoardSize; y++ {
				b.movableDir[b.turns][x][y] = dirNone
			}
		}
		return true
	}

	b.turns--
	placed := update[0]
	b.rawBoard[placed.X][placed.Y] = Empty
	for _, p := range update[1:] {
		b.rawBoard[p.X][p.Y] = -b.currentColor
	}

	discdiff := len(update)
	b.discs[b.currentColor+1] -= discdiff
	b.discs[-b.currentColor+1] += discdiff - 1
	b.discs[Empty+1]++
	b.initMovable()
	return true
}

// IsGameOver reports whether the game has ended: the turn limit was reached,
// or neither side has a legal move. Only the side to move has a cache, so the
// opponent is probed with direct mobility checks.
func (b *Board) IsGameOver() bool {
	if b.turns == MaxTurns {
		return true
	}
	if len(b.movablePos[b.turns]) != 0 {
		return false
	}
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			if b.checkMobility(move.Point{X: x, Y: y}, -b.currentColor) != dirNone {
				return false
			}
		}
	}
	return true
}

// MovablePos returns the cached legal moves for the side to move. The slice
// is read-only and stays valid across a balanced Move/Undo pair.
func (b *Board) MovablePos() []move.Point {
	return b.movablePos[b.turns]
}

// ColorAt returns the contents of the cell at p. Coordinates outside the
// playable grid read as Wall.
func (b *Board) ColorAt(p move.Point) int {
	if p.X < 0 || p.X > BoardSize+1 || p.Y < 0 || p.Y > BoardSize+1 {
		return Wall
	}
	return b.rawBoard[p.X][p.Y]
}

// CountDisc returns the number of cells holding the given color. Empty is a
// valid argument and counts the empty cells.
func (b *Board) CountDisc(color int) int {
	return b.discs[color+1]
}

// CurrentColor returns the side to move.
func (b *Board) CurrentColor() int {
	return b.currentColor
}

// Turns returns the number of discs placed so far. Passes do not count.
func (b *Board) Turns() int {
	return b.turns
}

// History returns the placed discs in order, passes omitted.
func (b *Board) History() []move.Point {
	history := make([]move.Point, 0, len(b.updateLog))
	for _, update := range b.updateLog {
		if len(update) == 0 {
			continue
		}
		history = append(history, update[0])
	}
	return history
}

// Liberty returns the number of empty cells adjacent to p.
// TODO: actually count empty neighbors so the liberty evaluation weight has
// an effect; every caller currently receives zero.
func (b *Board) Liberty(p move.Point) int {
	return 0
}

// SetState overwrites the position from an 8-row textual layout, mostly for
// setting up test and analysis positions. Each row is 8 characters of
// '.', 'X' (black) or 'O' (white), top row first. The side to move is set to
// color, the change log is cleared (there is nothing to undo into), and the
// turn counter is derived from the number of placed discs.
func (b *Board) SetState(rows []string, color int) error {
	if len(rows) != BoardSize {
		return fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}
	if color != Black && color != White {
		return fmt.Errorf("side to move must be Black or White")
	}
	var grid [BoardSize + 2][BoardSize + 2]int
	discs := [3]int{}
	for y := 1; y <= BoardSize; y++ {
		row := rows[y-1]
		if len(row) != BoardSize {
			return fmt.Errorf("row %d: expected %d cells, got %d", y, BoardSize, len(row))
		}
		for x := 1; x <= BoardSize; x++ {
			var c int
			switch row[x-1] {
			case '.':
				c = Empty
			case 'X':
				c = Black
			case 'O':
				c = White
			default:
				return fmt.Errorf("row %d: bad cell %q", y, row[x-1])
			}
			grid[x][y] = c
			discs[c+1]++
		}
	}
	b.Init()
	for x := 1; x <= BoardSize; x++ {
		for y := 1; y <= BoardSize; y++ {
			b.rawBoard[x][y] = grid[x][y]
		}
	}
	b.discs = discs
	b.turns = discs[Black+1] + discs[White+1] - 4
	if b.turns < 0 {
		b.turns = 0
	}
	b.currentColor = color
	b.updateLog = b.updateLog[:0]
	b.initMovable()
	return nil
}
