package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGroundProbes moves feet probes under their owners after collision
// and refreshes their grounded state.
func UpdateGroundProbes(ecs *ecs.ECS) {
	components.GroundProbe.Each(ecs.World, func(e *donburi.Entry) {
		probe := components.GroundProbe.Get(e)
		obj := components.Object.Get(e)
		probe.Follow(obj.X, obj.Y)

		var ignore []string
		if e.HasComponent(components.Physics) {
			ignore = components.Physics.Get(e).IgnoreTags
		}
		if _, landed := probe.CheckGrounded(ignore...); landed && probe.LandingEffect {
			spawnEffect(ecs, cfg.EffectLanding, feetOf(obj))
		}
	})
}

// UpdatePlayer runs the motor for every player.
func UpdatePlayer(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		health := components.Health.Get(e)
		probe := components.GroundProbe.Get(e)
		in := components.PlayerInput.Get(e)

		jumped := player.Step(components.MotorInput{
			Horizontal:  in.Horizontal,
			JumpStarted: in.JumpStarted,
			Grounded:    probe.Grounded,
			Dead:        !health.Alive(),
			Now:         now,
		}, physics)

		if jumped {
			spawnEffect(ecs, cfg.EffectJump, feetOf(components.Object.Get(e)))
		}
	})
}

// ApplyPlayerConfig pushes the current player tuning into live players.
func ApplyPlayerConfig(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).ApplyConfig(cfg.Player)
	})
}

func feetOf(obj *components.ObjectData) gamemath.Vec3 {
	return gamemath.Vec3{X: obj.X + obj.W/2, Y: obj.Y + obj.H, Z: obj.Z}
}
