package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the game tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the elapsed time fed into one tick after a stall
	MaxTickDelta = 250 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
