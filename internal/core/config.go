package core

// RuntimeConfig contains configuration passed to games at initialization.
// Front-ends use it to size the screen and to seed deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a game reports to the platform after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of this session
	Ticks     int  // Ticks simulated in the current run
	Started   bool // Whether the run has left the idle phase
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused
	Night     bool // Whether the night palette is active
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
