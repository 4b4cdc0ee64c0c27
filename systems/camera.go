package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera tracks the player's center using the configured style.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be game over), keep the last position
	}
	target := components.Object.Get(playerEntry).Center()
	targetPos := math.Vec2{X: target.X, Y: target.Y}

	if !camera.Initialized {
		camera.Position = targetPos
		camera.Initialized = true
		return
	}
	camera.Position = followTarget(config.Camera, camera.Position, targetPos)
}

func followTarget(c config.CameraConfig, current, target math.Vec2) math.Vec2 {
	switch c.Style {
	case config.CameraOverhead:
		return target
	case config.CameraDistanceFollow:
		offset := gamemath.V2(current.X-target.X, current.Y-target.Y)
		if dist := offset.Length(); dist > c.MaxDistanceFromTarget && dist > 0 {
			pulled := offset.Scale(c.MaxDistanceFromTarget / dist)
			return math.Vec2{X: target.X + pulled.X, Y: target.Y + pulled.Y}
		}
		return current
	case config.CameraOffsetFollow:
		return math.Vec2{X: target.X + c.OffsetX, Y: target.Y + c.OffsetY}
	}
	return current
}
