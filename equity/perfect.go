package equity

import (
	"github.com/domino14/reversi/board"
)

// PerfectEvaluator scores a position as the raw disc differential. It is
// exact on finished games and is used when the endgame is shallow enough to
// search to the very end.
type PerfectEvaluator struct{}

func (PerfectEvaluator) Evaluate(b *board.Board) int {
	return b.CurrentColor() * (b.CountDisc(board.Black) - b.CountDisc(board.White))
}
