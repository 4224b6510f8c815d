package equity

import (
	"github.com/domino14/reversi/board"
)

// An Evaluator is a static evaluator of reversi positions. The score is
// always expressed from the perspective of the side to move, so that a
// negamax search can negate it between plies: a positive score means the
// player whose turn it is stands better.
type Evaluator interface {
	Evaluate(b *board.Board) int
}
