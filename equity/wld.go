package equity

import (
	"github.com/domino14/reversi/board"
)

// Win/loss/draw scores.
const (
	Win  = 1
	Draw = 0
	Lose = -1
)

// WLDEvaluator collapses the disc differential to win, loss or draw. It is
// used early in the endgame when a forced result is all that matters; giving
// up the margin makes the search cut off much faster.
type WLDEvaluator struct{}

func (WLDEvaluator) Evaluate(b *board.Board) int {
	discdiff := b.CurrentColor() * (b.CountDisc(board.Black) - b.CountDisc(board.White))
	switch {
	case discdiff > 0:
		return Win
	case discdiff < 0:
		return Lose
	default:
		return Draw
	}
}
