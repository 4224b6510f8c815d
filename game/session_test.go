package game

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/search"
)

var testConfig = &config.Config{
	PresearchDepth: 1,
	NormalDepth:    2,
	WLDDepth:       6,
	PerfectDepth:   4,
}

// scriptInput feeds a fixed list of lines, then EOF.
func scriptInput(lines ...string) InputFunc {
	i := 0
	return func() (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
}

func TestDisplayStartingPosition(t *testing.T) {
	is := is.New(t)
	got := ToDisplayText(board.NewBoard())
	want := "" +
		"  a b c d e f g h\n" +
		"1 . . . . . . . .\n" +
		"2 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"4 . . . O X . . .\n" +
		"5 . . . X O . . .\n" +
		"6 . . . . . . . .\n" +
		"7 . . . . . . . .\n" +
		"8 . . . . . . . .\n"
	is.Equal(got, want)
}

func TestHumanMoveRejectedThenAccepted(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	h := &HumanPlayer{Input: scriptInput("zz", "a1", "f5"), Out: &out}

	b := board.NewBoard()
	outcome, err := h.OnTurn(b)
	is.NoErr(err)
	is.Equal(outcome, OutcomeContinue)
	is.Equal(b.Turns(), 1)
	is.True(strings.Contains(out.String(), "coordinates"))
	is.True(strings.Contains(out.String(), "can't play there"))
}

func TestHumanUndoAndExitRequests(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer

	h := &HumanPlayer{Input: scriptInput("u"), Out: &out}
	outcome, err := h.OnTurn(board.NewBoard())
	is.NoErr(err)
	is.Equal(outcome, OutcomeUndoRequested)

	h = &HumanPlayer{Input: scriptInput("x"), Out: &out}
	outcome, err = h.OnTurn(board.NewBoard())
	is.NoErr(err)
	is.Equal(outcome, OutcomeExitRequested)

	// End of input also exits.
	h = &HumanPlayer{Input: scriptInput(), Out: &out}
	outcome, err = h.OnTurn(board.NewBoard())
	is.NoErr(err)
	is.Equal(outcome, OutcomeExitRequested)
}

func TestSessionUndoRewindsARound(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	s := NewSession([2]Player{
		&HumanPlayer{Input: scriptInput("f5", "u", "x"), Out: &out},
		&AIPlayer{Solver: search.NewSolver(testConfig, nil), Out: &out},
	}, &out)

	err := s.Run()
	is.NoErr(err)
	// Human's f5 and the reply were both taken back before the exit.
	is.Equal(s.Board.Turns(), 0)
	is.Equal(s.Board.CountDisc(board.Black), 2)
	is.Equal(s.Board.CountDisc(board.White), 2)
	is.Equal(s.onTurn, 0)
}

func TestSessionUndoBeforeAnyMove(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	s := NewSession([2]Player{
		&HumanPlayer{Input: scriptInput("u", "x"), Out: &out},
		&AIPlayer{Solver: search.NewSolver(testConfig, nil), Out: &out},
	}, &out)

	err := s.Run()
	is.NoErr(err)
	is.True(strings.Contains(out.String(), "nothing to undo"))
}

func TestSessionComputerVersusComputer(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	s := NewSession([2]Player{
		&AIPlayer{Solver: search.NewSolver(testConfig, nil), Out: &out},
		&AIPlayer{Solver: search.NewSolver(testConfig, nil), Out: &out},
	}, &out)

	err := s.Run()
	is.NoErr(err)
	is.True(s.Board.IsGameOver())
	is.True(strings.Contains(out.String(), "game over: black"))
	total := s.Board.CountDisc(board.Black) + s.Board.CountDisc(board.White) + s.Board.CountDisc(board.Empty)
	is.Equal(total, 64)
}

func TestAIPlayerPassesWhenBlocked(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	a := &AIPlayer{Solver: search.NewSolver(testConfig, nil), Out: &out}

	b := board.NewBoard()
	err := b.SetState([]string{
		"XO......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}, board.White)
	is.NoErr(err)

	outcome, err := a.OnTurn(b)
	is.NoErr(err)
	is.Equal(outcome, OutcomeContinue)
	is.Equal(b.CurrentColor(), board.Black)
}
