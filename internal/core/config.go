package core

// RuntimeConfig is handed to Game.Reset.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	Seed    int64 // 0 picks a time-based seed
}

// DefaultConfig is an 80x24 terminal with a random seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24}
}

// GameState is the summary the TUI needs after each step.
type GameState struct {
	GameOver bool
	Won      bool
	TooSmall bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState

	// Accepted is false when the input was rejected as a no-op
	// (duplicate letter, non-letter, or input after game over).
	Accepted bool
}
