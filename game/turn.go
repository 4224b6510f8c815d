package game

// TurnOutcome is what a player's turn handler reports back to the session
// loop. The loop reacts to the outcome; the core board never raises
// control-flow signals of its own.
type TurnOutcome int

const (
	// OutcomeContinue hands the turn to the other player.
	OutcomeContinue TurnOutcome = iota
	// OutcomeUndoRequested asks the session to take back the last round.
	OutcomeUndoRequested
	// OutcomeExitRequested abandons the game.
	OutcomeExitRequested
	// OutcomeGameOver means the handler's move finished the game.
	OutcomeGameOver
)

func (o TurnOutcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeUndoRequested:
		return "undo"
	case OutcomeExitRequested:
		return "exit"
	case OutcomeGameOver:
		return "game over"
	}
	return "unknown"
}
