package equity

import (
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

// Weights are the fixed coefficients of the midgame evaluation. They were
// tuned against Internet Othello Server game records and are supplied at
// construction; the engine never adjusts them.
type Weights struct {
	Mobility int
	Liberty  int
	Stable   int
	Wing     int
	XMove    int
	CMove    int
}

// DefaultWeights returns the tuned midgame coefficients.
func DefaultWeights() Weights {
	return Weights{
		Mobility: 67,
		Liberty:  -13,
		Stable:   101,
		Wing:     -308,
		XMove:    -449,
		CMove:    -552,
	}
}

// cornerParam collects the statistics around one color's corners: corners
// held, and risky X moves played diagonally next to a still-open corner.
type cornerParam struct {
	corner int8
	xMove  int8
}

// cornerStat holds per-color corner parameters, indexed by color+1.
type cornerStat [3]cornerParam

func (s *cornerStat) get(color int) *cornerParam {
	return &s[color+1]
}

// MidEvaluator is the heuristic used through the opening and middlegame. It
// combines the precomputed edge-line statistics with direct corner
// inspection and the mobility of the side to move.
type MidEvaluator struct {
	weights Weights
	table   []edgeStat
}

// NewMidEvaluator returns a midgame evaluator with the given weights,
// triggering the one-time edge table build if it has not happened yet.
func NewMidEvaluator(w Weights) *MidEvaluator {
	return &MidEvaluator{weights: w, table: edgeTable()}
}

func (m *MidEvaluator) Evaluate(b *board.Board) int {
	// Edge statistics for the four border lines. The table entries are
	// values, so summing into stat never touches the shared table.
	stat := m.table[idxTop(b)]
	stat.add(m.table[idxBottom(b)])
	stat.add(m.table[idxRight(b)])
	stat.add(m.table[idxLeft(b)])

	corners := evalCorner(b)

	// Each occupied corner was counted by both adjacent edges; correct the
	// stable totals once per color.
	stat.get(board.Black).stable -= corners.get(board.Black).corner
	stat.get(board.White).stable -= corners.get(board.White).corner

	result := int(stat.get(board.Black).stable-stat.get(board.White).stable)*m.weights.Stable +
		int(stat.get(board.Black).wing-stat.get(board.White).wing)*m.weights.Wing +
		int(corners.get(board.Black).xMove-corners.get(board.White).xMove)*m.weights.XMove +
		int(stat.get(board.Black).cMove-stat.get(board.White).cMove)*m.weights.CMove

	if m.weights.Liberty != 0 {
		liberty := countLiberty(b)
		result += liberty[board.Black+1] * m.weights.Liberty
		result -= liberty[board.White+1] * m.weights.Liberty
	}

	// Mobility is counted for the side to move only; symmetrizing it would
	// cost a second full legality scan.
	result += b.CurrentColor() * len(b.MovablePos()) * m.weights.Mobility

	return b.CurrentColor() * result
}

// evalCorner inspects the four corners directly: a held corner scores a
// corner point for its color, and an occupied diagonal neighbor of an open
// corner scores an X-move penalty point.
func evalCorner(b *board.Board) cornerStat {
	var stat cornerStat
	corners := [4]struct {
		corner   move.Point
		diagonal move.Point
	}{
		{move.Point{X: 1, Y: 1}, move.Point{X: 2, Y: 2}},
		{move.Point{X: 1, Y: 8}, move.Point{X: 2, Y: 7}},
		{move.Point{X: 8, Y: 8}, move.Point{X: 7, Y: 7}},
		{move.Point{X: 8, Y: 1}, move.Point{X: 7, Y: 2}},
	}
	for _, c := range corners {
		color := b.ColorAt(c.corner)
		stat.get(color).corner++
		if color == board.Empty {
			stat.get(b.ColorAt(c.diagonal)).xMove++
		}
	}
	return stat
}

// countLiberty totals the liberties of each color's discs. Board.Liberty is
// still a stub, so every total is currently zero and the liberty weight has
// no observable effect.
func countLiberty(b *board.Board) [3]int {
	var liberty [3]int
	for x := 1; x <= board.BoardSize; x++ {
		for y := 1; y <= board.BoardSize; y++ {
			p := move.Point{X: x, Y: y}
			liberty[b.ColorAt(p)+1] += b.Liberty(p)
		}
	}
	return liberty
}

// The four edge lines are indexed in base 3, digit = cell color + 1, with
// the a-file/first-rank end of each line carrying the highest weight.

func idxTop(b *board.Board) int {
	index := 0
	for x := 1; x <= board.BoardSize; x++ {
		index = index*3 + b.ColorAt(move.Point{X: x, Y: 1}) + 1
	}
	return index
}

func idxBottom(b *board.Board) int {
	index := 0
	for x := 1; x <= board.BoardSize; x++ {
		index = index*3 + b.ColorAt(move.Point{X: x, Y: 8}) + 1
	}
	return index
}

func idxLeft(b *board.Board) int {
	index := 0
	for y := 1; y <= board.BoardSize; y++ {
		index = index*3 + b.ColorAt(move.Point{X: 1, Y: y}) + 1
	}
	return index
}

func idxRight(b *board.Board) int {
	index := 0
	for y := 1; y <= board.BoardSize; y++ {
		index = index*3 + b.ColorAt(move.Point{X: 8, Y: y}) + 1
	}
	return index
}
