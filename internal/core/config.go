package core

// RuntimeConfig describes the terminal a game runs in.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Frames per second driving the countdown
	Seed     int64 // Item placement seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}
