package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's elapsed time after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// KeyHoldTimeout is how long a key counts as held after its last press or repeat
	// Terminals report no key release, so holds are synthesized from auto-repeat
	KeyHoldTimeout = 120 * time.Millisecond

	// KeyFirstHoldTimeout bridges the gap between a first press and the terminal's first auto-repeat
	KeyFirstHoldTimeout = 450 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Playfield in simulation pixels
const (
	PlayfieldWidth  = 700
	PlayfieldHeight = 600
)

// DefaultSeed drives the world random source when none is configured
const DefaultSeed = 0x5EED
