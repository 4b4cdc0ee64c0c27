package components

import (
	"github.com/yohamta/donburi"
)

// InputSource is polled once per tick for the local player's controls.
type InputSource interface {
	HorizontalMovement() float64
	JumpStarted() bool // true for exactly one tick per press
	JumpHeld() bool
}

// InputPoller is implemented by sources that need to advance once per tick
// before being read.
type InputPoller interface {
	Poll()
}

// Shooter is implemented by sources that have a fire button.
type Shooter interface {
	ShootStarted() bool // true for exactly one tick per press
}

// PlayerInputData is the input a player read this tick.
type PlayerInputData struct {
	Horizontal   float64
	JumpStarted  bool
	JumpHeld     bool
	ShootStarted bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// InputSourceData holds the session's input source. Source may be nil.
type InputSourceData struct {
	Source InputSource
}

var Input = donburi.NewComponentType[InputSourceData]()
