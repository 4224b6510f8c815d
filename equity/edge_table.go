package equity

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/cache"
)

// The edge table holds precomputed statistics for every possible occupancy
// of an 8-cell edge line: 3^8 = 6561 assignments of empty/black/white. It is
// built once per process through the object cache and shared read-only by
// every midgame evaluator afterwards.

const edgeTableSize = 6561 // 3^8

type edgeParam struct {
	stable   int8 // discs locked in from either end of the line
	wing     int8
	mountain int8
	cMove    int8 // risky placements next to an open corner
}

func (e *edgeParam) add(src edgeParam) {
	e.stable += src.stable
	e.wing += src.wing
	e.mountain += src.mountain
	e.cMove += src.cMove
}

// edgeStat holds the per-color edge parameters, indexed by color+1.
type edgeStat [3]edgeParam

func (s *edgeStat) add(o edgeStat) {
	for i := range s {
		s[i].add(o[i])
	}
}

func (s *edgeStat) get(color int) *edgeParam {
	return &s[color+1]
}

func edgeTable() []edgeStat {
	obj, err := cache.Load("edge-table", func(key string) (interface{}, error) {
		table := make([]edgeStat, edgeTableSize)
		line := make([]int, board.BoardSize)
		generateEdge(table, line, 0)
		return table, nil
	})
	if err != nil {
		// The builder is pure computation and cannot fail.
		log.Fatal().Err(err).Msg("building edge table")
	}
	return obj.([]edgeStat)
}

// generateEdge enumerates every assignment of the remaining line cells and
// stores the statistics for each completed line at its base-3 index.
func generateEdge(table []edgeStat, line []int, count int) {
	if count == board.BoardSize {
		var stat edgeStat
		*stat.get(board.Black) = evalEdge(line, board.Black)
		*stat.get(board.White) = evalEdge(line, board.White)
		table[idxLine(line)] = stat
		return
	}
	for _, color := range [3]int{board.Empty, board.Black, board.White} {
		line[count] = color
		generateEdge(table, line, count+1)
	}
}

// evalEdge computes the edge statistics of a single line for one color.
//
// Wing, mountain and C-move classification applies only while both corners
// of the line are open. If the six inner cells contain a same-colored block
// covering positions 2..5, the two cells next to the corners decide between
// wing (one occupied) and mountain (both occupied); without such a block,
// each occupied corner-adjacent cell counts as a risky C move.
func evalEdge(line []int, color int) edgeParam {
	var p edgeParam

	if line[0] == board.Empty && line[7] == board.Empty {
		x := 2
		for x <= 5 {
			if line[x] != color {
				break
			}
			x++
		}
		if x == 6 {
			if line[1] == color && line[6] == board.Empty {
				p.wing = 1
			} else if line[1] == board.Empty && line[6] == color {
				p.wing = 1
			} else if line[1] == color && line[6] == color {
				p.mountain = 1
			}
		} else {
			if line[1] == color {
				p.cMove++
			}
			if line[6] == color {
				p.cMove++
			}
		}
	}

	// Stable discs: contiguous runs anchored at either end of the line.
	for x := 0; x < 8; x++ {
		if line[x] != color {
			break
		}
		p.stable++
	}
	if p.stable < 8 {
		for x := 7; x > 0; x-- {
			if line[x] != color {
				break
			}
			p.stable++
		}
	}
	return p
}

// idxLine maps a line to its base-3 table index; each cell becomes the digit
// color+1, position 0 carrying the highest weight.
func idxLine(line []int) int {
	index := 0
	for _, c := range line {
		index = index*3 + c + 1
	}
	return index
}
