package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/automatic"
	"github.com/domino14/reversi/book"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/search"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func shellLoop(cfg *config.Config, bk *book.Book) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mreversi>\033[0m ",
		HistoryFile:     "/tmp/reversi-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	defer l.Close()

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "bye" || line == "exit":
			break readlineLoop
		case line == "play":
			playGame(cfg, bk, l)
		case strings.HasPrefix(line, "autoplay"):
			runAutoplay(cfg, bk, line, l.Stderr())
		case line == "help":
			usage(l.Stderr())
		case line == "":
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			showMessage("unknown command; try `help`", l.Stderr())
		}
	}
}

func playGame(cfg *config.Config, bk *book.Book, l *readline.Instance) {
	solver := search.NewSolver(cfg, bk)
	human := &game.HumanPlayer{Input: l.Readline, Out: l.Stderr()}
	ai := &game.AIPlayer{Solver: solver, Out: l.Stderr()}

	players := [2]game.Player{human, ai}
	if cfg.ComputerFirst {
		players = [2]game.Player{ai, human}
	}
	s := game.NewSession(players, l.Stderr())
	if err := s.Run(); err != nil {
		showMessage("Error: "+err.Error(), l.Stderr())
	}
}

func runAutoplay(cfg *config.Config, bk *book.Book, line string, w io.Writer) {
	numGames := 1
	threads := 1
	fields := strings.Fields(line)
	var err error
	if len(fields) > 1 {
		if numGames, err = strconv.Atoi(fields[1]); err != nil {
			showMessage("bad game count: "+fields[1], w)
			return
		}
	}
	if len(fields) > 2 {
		if threads, err = strconv.Atoi(fields[2]); err != nil {
			showMessage("bad thread count: "+fields[2], w)
			return
		}
	}
	results, err := automatic.StartCompVCompGames(context.Background(), cfg, bk, numGames, threads)
	if err != nil {
		showMessage("Error: "+err.Error(), w)
		return
	}
	showMessage(fmt.Sprintf("black %d, white %d, draws %d",
		results.BlackWins, results.WhiteWins, results.Draws), w)
}
