package core

import "time"

// RuntimeConfig is handed from the platform layer to the game at startup.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in cells
	ScreenH  int           // Screen height in cells
	TickRate int           // Frames per second requested from the host
	Seed     int64         // RNG seed, 0 means time-based
	KeyHold  time.Duration // How long a key counts as held without a repeat (terminal only)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		KeyHold:  180 * time.Millisecond,
	}
}
