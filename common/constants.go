package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is in pixels per second squared; +Y points down the screen.
	Gravity = 240.0

	TicksPerSecond = 60
)

// TickDuration is the simulated time covered by one update tick.
const TickDuration = time.Second / TicksPerSecond
