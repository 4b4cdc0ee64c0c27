package archetypes

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

var (
	Session = newArchetype(
		components.Clock,
		components.KeyRing,
		components.CheckpointTracker,
		components.Level,
		components.Input,
		components.Pending,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Object,
		components.Waypoint,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
		components.Health,
		components.GroundProbe,
	)
	WalkingEnemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Damage,
		components.Head,
	)
	FlyingEnemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Damage,
		components.Head,
		components.Waypoint,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.Damage,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Laser = newArchetype(
		tags.Laser,
		components.Laser,
		components.Object,
		components.Damage,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
