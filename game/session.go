package game

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
)

// A Session runs one game between two players on a shared board, rendering
// the position between turns and reacting to player outcomes.
type Session struct {
	Board   *board.Board
	Players [2]Player
	Out     io.Writer

	onTurn int
}

// NewSession starts a fresh game. Players[0] moves first (black).
func NewSession(players [2]Player, out io.Writer) *Session {
	return &Session{
		Board:   board.NewBoard(),
		Players: players,
		Out:     out,
	}
}

// Run plays the game to completion or until a player asks to exit.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.Out, ToDisplayText(s.Board))
		outcome, err := s.Players[s.onTurn].OnTurn(s.Board)
		if err != nil {
			return err
		}
		switch outcome {
		case OutcomeContinue:
			s.onTurn = 1 - s.onTurn
		case OutcomeUndoRequested:
			s.takeBack()
		case OutcomeExitRequested:
			log.Debug().Msg("game abandoned")
			return nil
		case OutcomeGameOver:
			s.finish()
			return nil
		}
	}
}

// takeBack rewinds the opponent's reply and the requester's own move, and
// keeps rewinding past any rounds where the requester was forced to pass, so
// the same player is back on move with a real choice. Each undone ply flips
// whose turn it is, so the player index follows the undo count.
func (s *Session) takeBack() {
	undone := 0
	if !s.Board.Undo() {
		fmt.Fprintln(s.Out, "nothing to undo")
		return
	}
	undone++
	for {
		if !s.Board.Undo() {
			break
		}
		undone++
		if len(s.Board.MovablePos()) > 0 {
			break
		}
		if !s.Board.Undo() {
			break
		}
		undone++
	}
	s.onTurn = (s.onTurn + undone) % 2
}

func (s *Session) finish() {
	fmt.Fprintln(s.Out, ToDisplayText(s.Board))
	black := s.Board.CountDisc(board.Black)
	white := s.Board.CountDisc(board.White)
	fmt.Fprintf(s.Out, "game over: black %d - white %d\n", black, white)
	switch {
	case black > white:
		fmt.Fprintln(s.Out, "black wins")
	case white > black:
		fmt.Fprintln(s.Out, "white wins")
	default:
		fmt.Fprintln(s.Out, "draw")
	}
}
