package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/reversi/board"
)

func setState(t *testing.T, rows []string, color int) *board.Board {
	t.Helper()
	b := board.NewBoard()
	if err := b.SetState(rows, color); err != nil {
		t.Fatal(err)
	}
	return b
}

// 34 black discs, 30 white, completely full board.
var terminalRows = []string{
	"XXXXXXXX",
	"XXXXXXXX",
	"XXXXXXXX",
	"XXXXXXXX",
	"XXOOOOOO",
	"OOOOOOOO",
	"OOOOOOOO",
	"OOOOOOOO",
}

func swapColors(rows []string) []string {
	swapped := make([]string, len(rows))
	for i, row := range rows {
		out := []byte(row)
		for j := range out {
			switch out[j] {
			case 'X':
				out[j] = 'O'
			case 'O':
				out[j] = 'X'
			}
		}
		swapped[i] = string(out)
	}
	return swapped
}

func TestPerfectEvaluator(t *testing.T) {
	b := setState(t, terminalRows, board.Black)
	assert.True(t, b.IsGameOver())
	assert.Equal(t, 4, PerfectEvaluator{}.Evaluate(b))

	b = setState(t, terminalRows, board.White)
	assert.Equal(t, -4, PerfectEvaluator{}.Evaluate(b))
}

func TestWLDEvaluator(t *testing.T) {
	b := setState(t, terminalRows, board.Black)
	assert.Equal(t, Win, WLDEvaluator{}.Evaluate(b))

	b = setState(t, terminalRows, board.White)
	assert.Equal(t, Lose, WLDEvaluator{}.Evaluate(b))

	drawn := []string{
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"OOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
	}
	b = setState(t, drawn, board.Black)
	assert.Equal(t, Draw, WLDEvaluator{}.Evaluate(b))
}

// Swapping every disc's color while keeping the same side to move must
// negate the differential evaluators.
func TestDiscDifferentialSignConvention(t *testing.T) {
	b := setState(t, terminalRows, board.Black)
	swapped := setState(t, swapColors(terminalRows), board.Black)

	assert.Equal(t, PerfectEvaluator{}.Evaluate(b), -PerfectEvaluator{}.Evaluate(swapped))
	assert.Equal(t, WLDEvaluator{}.Evaluate(b), -WLDEvaluator{}.Evaluate(swapped))
}

func TestMidEvaluatorStartingPosition(t *testing.T) {
	// Empty edges and corners leave only the mobility term: four legal
	// moves for the opening side.
	m := NewMidEvaluator(DefaultWeights())
	b := board.NewBoard()
	assert.Equal(t, 4*67, m.Evaluate(b))
}

func TestMidEvaluatorCMove(t *testing.T) {
	// A lone black disc next to the still-open a1 corner is a risky C move.
	m := NewMidEvaluator(DefaultWeights())
	rows := []string{
		".X......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}
	b := setState(t, rows, board.White)
	assert.Equal(t, 552, m.Evaluate(b))

	b = setState(t, rows, board.Black)
	assert.Equal(t, -552, m.Evaluate(b))
}

func TestMidEvaluatorXMove(t *testing.T) {
	// A disc diagonally adjacent to an open corner is penalized.
	m := NewMidEvaluator(DefaultWeights())
	b := setState(t, []string{
		"........",
		".X......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}, board.White)
	assert.Equal(t, 449, m.Evaluate(b))
}

func TestMidEvaluatorWing(t *testing.T) {
	m := NewMidEvaluator(DefaultWeights())
	b := setState(t, []string{
		".XXXXX..",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}, board.White)
	assert.Equal(t, 308, m.Evaluate(b))
}

func TestMidEvaluatorStableEdgeWithCornerCorrection(t *testing.T) {
	// A full black top edge: 8 stable on the top line plus 1 on each side
	// line, minus the two corners counted twice.
	m := NewMidEvaluator(DefaultWeights())
	b := setState(t, []string{
		"XXXXXXXX",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}, board.White)
	assert.Equal(t, -8*101, m.Evaluate(b))
}

// Swapping both the disc colors and the side to move yields the equivalent
// position seen from the other seat; the normalized score must not change.
func TestMidEvaluatorToMoveNormalization(t *testing.T) {
	m := NewMidEvaluator(DefaultWeights())
	rows := []string{
		".X......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}
	b := setState(t, rows, board.White)
	mirrored := setState(t, swapColors(rows), board.Black)
	assert.Equal(t, m.Evaluate(b), m.Evaluate(mirrored))
}

func BenchmarkMidEvaluator(b *testing.B) {
	m := NewMidEvaluator(DefaultWeights())
	bd := board.NewBoard()
	bd.Move(bd.MovablePos()[0])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Evaluate(bd)
	}
}
