package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
	"github.com/domino14/reversi/search"
)

// A Player takes one turn on the board: moving, passing, or reporting that
// the user asked for an undo or an exit.
type Player interface {
	OnTurn(b *board.Board) (TurnOutcome, error)
}

// An InputFunc supplies one line of user input.
type InputFunc func() (string, error)

// AIPlayer plays whatever the solver chooses.
type AIPlayer struct {
	Solver *search.Solver
	Out    io.Writer
}

func (a *AIPlayer) OnTurn(b *board.Board) (TurnOutcome, error) {
	fmt.Fprint(a.Out, "thinking...")
	p, ok := a.Solver.ChooseMove(b)
	if !ok {
		fmt.Fprintln(a.Out, " no moves; passing")
		b.Pass()
		return OutcomeContinue, nil
	}
	if !b.Move(p) {
		return OutcomeContinue, fmt.Errorf("solver chose illegal move %s", p)
	}
	fmt.Fprintf(a.Out, " [%s]\n", p)
	if b.IsGameOver() {
		return OutcomeGameOver, nil
	}
	return OutcomeContinue, nil
}

// HumanPlayer reads coordinates from Input until one is accepted. "u"
// requests an undo, "x" an exit; end of input also exits.
type HumanPlayer struct {
	Input InputFunc
	Out   io.Writer
}

func (h *HumanPlayer) OnTurn(b *board.Board) (TurnOutcome, error) {
	movables := b.MovablePos()
	if len(movables) == 0 {
		fmt.Fprintln(h.Out, "you have no legal moves; passing")
		b.Pass()
		return OutcomeContinue, nil
	}
	for {
		fmt.Fprintf(h.Out, "your move (ex. f5, u: undo, x: exit) %s\n", formatMoves(movables))
		line, err := h.Input()
		if err != nil {
			return OutcomeExitRequested, nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "u":
			return OutcomeUndoRequested, nil
		case "x":
			return OutcomeExitRequested, nil
		}
		p, err := move.Parse(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(h.Out, "please enter coordinates like f5")
			continue
		}
		if !b.Move(p) {
			fmt.Fprintln(h.Out, "you can't play there")
			continue
		}
		break
	}
	if b.IsGameOver() {
		return OutcomeGameOver, nil
	}
	return OutcomeContinue, nil
}

func formatMoves(movables []move.Point) string {
	coords := make([]string, len(movables))
	for i, p := range movables {
		coords[i] = p.String()
	}
	return "[" + strings.Join(coords, " ") + "]"
}
