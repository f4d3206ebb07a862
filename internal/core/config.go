package core

// RuntimeConfig contains configuration passed to a session at initialization.
// The session uses this to adapt to the display size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Display width in characters
	ScreenH  int   // Display height in characters
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
