package core

// RuntimeConfig contains the platform-side settings a frontend hands to the game.
// World geometry lives in config.FlappyConfig; this only describes the host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window frontend)
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

// GameState represents the current state of a game.
// Returned by Controller.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Ticks    int  // Simulation ticks since the last (re)start
}
