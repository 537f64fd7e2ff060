package core

// RuntimeConfig contains the settings a frontend needs to drive one match.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Simulation ticks per second (default 10)
	Seed      int64 // RNG seed for deterministic apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 10,
		Seed:      0, // 0 means use current time in the frontend
	}
}
