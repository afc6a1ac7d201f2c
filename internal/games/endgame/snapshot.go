package endgame

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable round state for determinism testing.
type Snapshot struct {
	Round        int
	Target       string
	Guessed      string // Letters in guess order
	Revealed     string // Target with hidden letters as '_'
	WrongGuesses int
	AttemptsLeft int
	Farewell     string
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{State: StatePlaying}
	}
	e := g.engine

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case e.IsWon():
		state = StateWin
	case e.IsLost():
		state = StateGameOver
	}

	revealed := e.RevealedWord()
	for i, r := range revealed {
		if r == 0 {
			revealed[i] = '_'
		}
	}
	farewell, _ := e.FarewellText()

	return Snapshot{
		Round:        g.Round(),
		Target:       e.TargetWord(),
		Guessed:      string(e.GuessedLetters()),
		Revealed:     string(revealed),
		WrongGuesses: e.WrongGuessCount(),
		AttemptsLeft: e.AttemptsRemaining(),
		Farewell:     farewell,
		State:        state,
	}
}
