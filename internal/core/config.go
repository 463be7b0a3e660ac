package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
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

// GameState is the session status reported to the platform after each tick.
type GameState struct {
	Score    int     // Floor of the distance ascended
	Distance float64 // Total distance ascended in world units
	Ticks    int     // Ticks simulated while running
	Started  bool    // Whether the session has left the title card
	GameOver bool    // Whether the session has ended
	Paused   bool    // Whether the session is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
