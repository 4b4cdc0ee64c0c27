package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// Initialized is false until the camera first snaps to its target.
	Initialized bool
}

var Camera = donburi.NewComponentType[CameraData]()
