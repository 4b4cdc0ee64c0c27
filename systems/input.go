package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the session's input source once and hands the result to
// every player. Without a source players read zero input.
func UpdateInput(ecs *ecs.ECS) {
	var frame components.PlayerInputData
	if e, ok := components.Input.First(ecs.World); ok {
		if src := components.Input.Get(e).Source; src != nil {
			if poller, ok := src.(components.InputPoller); ok {
				poller.Poll()
			}
			frame = components.PlayerInputData{
				Horizontal:  gamemath.ClampSpeed(src.HorizontalMovement(), 1),
				JumpStarted: src.JumpStarted(),
				JumpHeld:    src.JumpHeld(),
			}
			if shooter, ok := src.(components.Shooter); ok {
				frame.ShootStarted = shooter.ShootStarted()
			}
		}
	}

	components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
		components.PlayerInput.SetValue(e, frame)
	})
}
