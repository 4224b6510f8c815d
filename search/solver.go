package search

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/book"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/move"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

const infinity = int(math.MaxInt32)

// unboundedDepth lets the endgame search run to the end of the game; a game
// can never be more than MaxTurns plies deep.
const unboundedDepth = infinity

type solution struct {
	p     move.Point
	score int
}

// A Solver picks moves: first from the opening book, then by alpha-beta
// negamax with presearch move ordering and an evaluator chosen by how far
// the game has progressed. It owns no board; the caller's board is mutated
// in a strict apply-then-undo discipline while a search runs.
type Solver struct {
	presearchDepth int
	normalDepth    int
	wldDepth       int
	perfectDepth   int

	book *book.Book
	mid  *equity.MidEvaluator

	// evaluator in effect for the current search phase.
	evaluator equity.Evaluator
	nodes     uint64
}

// NewSolver builds a solver from the configured depths, using bk for
// opening guidance. bk may be nil to play without a book.
func NewSolver(cfg *config.Config, bk *book.Book) *Solver {
	return &Solver{
		presearchDepth: cfg.PresearchDepth,
		normalDepth:    cfg.NormalDepth,
		wldDepth:       cfg.WLDDepth,
		perfectDepth:   cfg.PerfectDepth,
		book:           bk,
		mid:            equity.NewMidEvaluator(equity.DefaultWeights()),
	}
}

// ChooseMove returns the move to play in the current position. It reports
// false only when the side to move has no legal move at all, in which case
// the caller should pass.
func (s *Solver) ChooseMove(b *board.Board) (move.Point, bool) {
	if s.book != nil {
		if p, ok := s.book.Lookup(b.History()); ok {
			log.Debug().Str("move", p.String()).Msg("book move")
			return p, true
		}
	}

	movables := b.MovablePos()
	if len(movables) == 0 {
		return move.Point{}, false
	}
	if len(movables) == 1 {
		return movables[0], true
	}

	// The presearch always runs on the midgame heuristic; only the main
	// search switches evaluators by phase.
	s.evaluator = s.mid
	s.nodes = 0
	ordered := s.sortByPresearch(b, movables)

	limit := s.normalDepth
	evaluatorName := "mid"
	remaining := board.MaxTurns - b.Turns()
	if remaining <= s.wldDepth {
		limit = unboundedDepth
		if remaining <= s.perfectDepth {
			s.evaluator = equity.PerfectEvaluator{}
			evaluatorName = "perfect"
		} else {
			s.evaluator = equity.WLDEvaluator{}
			evaluatorName = "wld"
		}
	}

	best := ordered[0]
	bestScore := -infinity
	for _, p := range ordered {
		b.Move(p)
		score := -s.negamax(b, limit-1, -infinity, infinity)
		b.Undo()
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	log.Debug().
		Str("move", best.String()).
		Int("score", bestScore).
		Int("remaining", remaining).
		Str("evaluator", evaluatorName).
		Uint64("nodes", s.nodes).
		Msg("search-done")
	return best, true
}

// sortByPresearch orders the root moves by a shallow search so that the
// main search sees the most promising moves first and prunes harder. The
// ordering only affects traversal order, never the final choice.
func (s *Solver) sortByPresearch(b *board.Board, movables []move.Point) []move.Point {
	sols := lo.Map(movables, func(p move.Point, _ int) solution {
		b.Move(p)
		score := -s.negamax(b, s.presearchDepth-1, -infinity, infinity)
		b.Undo()
		return solution{p: p, score: score}
	})

	// Selection sort, biggest score first.
	for begin := 0; begin < len(sols)-1; begin++ {
		for current := begin + 1; current < len(sols); current++ {
			if sols[begin].score < sols[current].score {
				sols[begin], sols[current] = sols[current], sols[begin]
			}
		}
	}

	return lo.Map(sols, func(sol solution, _ int) move.Point {
		return sol.p
	})
}

func (s *Solver) negamax(b *board.Board, depth int, α, β int) int {
	if b.IsGameOver() || depth <= 0 {
		s.nodes++
		return s.evaluator.Evaluate(b)
	}

	movables := b.MovablePos()
	if len(movables) == 0 {
		// The side to move passes. A doubly blocked position was already
		// caught by the terminal check above, so the pass must succeed.
		b.Pass()
		score := -s.negamax(b, depth, -β, -α)
		b.Undo()
		return score
	}

	for _, p := range movables {
		b.Move(p)
		score := -s.negamax(b, depth-1, -β, -α)
		b.Undo()
		if score > α {
			α = score
		}
		if α >= β {
			return α // β cut-off
		}
	}
	return α
}
