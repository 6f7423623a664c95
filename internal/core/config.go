package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible state of a game, returned by
// Game.State() for HUD display and score persistence.
type GameState struct {
	Score    int  // Current score
	Gold     int  // Currency earned this run
	Wave     int  // Current wave (1-based; 0 before the first wave)
	Lives    int  // Lives remaining (negative means unbounded)
	Kills    int  // Hostiles destroyed this run
	Combo    int  // Current consecutive-kill streak
	GameOver bool // Whether the game has ended
	Victory  bool // Whether the ending was a win (only with GameOver)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Events lists discrete notifications (shots fired, kills, wave
	// starts...) that occurred during this tick, in order. Consumers
	// such as audio are free to ignore them.
	Events []Event
}
