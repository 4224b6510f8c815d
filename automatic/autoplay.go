package automatic

// Computer vs computer games, for exercising the engine and comparing
// search settings over many games.

import (
	"context"
	"errors"
	"expvar"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/book"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/search"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Results tallies finished games by winner color.
type Results struct {
	BlackWins int
	WhiteWins int
	Draws     int
}

// A GameRunner plays full games with a single solver driving both sides.
type GameRunner struct {
	config *config.Config
	solver *search.Solver
	board  *board.Board
}

func NewGameRunner(cfg *config.Config, bk *book.Book) *GameRunner {
	return &GameRunner{
		config: cfg,
		solver: search.NewSolver(cfg, bk),
		board:  board.NewBoard(),
	}
}

// playFullGame plays one game from the starting position and returns the
// final disc counts for black and white.
func (r *GameRunner) playFullGame() (int, int) {
	r.board.Init()
	for !r.board.IsGameOver() {
		if p, ok := r.solver.ChooseMove(r.board); ok {
			r.board.Move(p)
		} else {
			r.board.Pass()
		}
	}
	return r.board.CountDisc(board.Black), r.board.CountDisc(board.White)
}

// StartCompVCompGames plays numGames games across up to threads goroutines
// and returns the aggregated results. Only one batch may run at a time.
func StartCompVCompGames(ctx context.Context, cfg *config.Config, bk *book.Book,
	numGames int, threads int) (*Results, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)
	CVCCounter.Set(0)

	results := &Results{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := 0; i < numGames; i++ {
		select {
		case <-ctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			return results, ctx.Err()
		default:
		}
		g.Go(func() error {
			r := NewGameRunner(cfg, bk)
			black, white := r.playFullGame()
			CVCCounter.Add(1)
			mu.Lock()
			switch {
			case black > white:
				results.BlackWins++
			case white > black:
				results.WhiteWins++
			default:
				results.Draws++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	log.Info().
		Int("black-wins", results.BlackWins).
		Int("white-wins", results.WhiteWins).
		Int("draws", results.Draws).
		Msg("All games finished.")
	return results, nil
}
