package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates a static block that stops movement from every side.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	obj := newBox(x, y, w, h, tags.ResolvSolid)
	obj.Data = solid
	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return solid
}

// CreatePlatform creates a static one-way platform.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Solid.Spawn(ecs)
	obj := newBox(x, y, w, h, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return platform
}

// MovingPlatformOptions configures a waypoint-driven platform.
type MovingPlatformOptions struct {
	Path      []gamemath.Vec3
	MoveSpeed float64 // 0 uses cfg.Waypoint.MoveSpeed
	WaitTime  float64 // negative uses cfg.Waypoint.WaitTime
	OneWay    bool
}

// CreateMovingPlatform creates a platform that follows a waypoint path and
// carries whatever stands on it.
func CreateMovingPlatform(ecs *ecs.ECS, x, y, w, h float64, opts MovingPlatformOptions) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	tag := tags.ResolvSolid
	if opts.OneWay {
		tag = tags.ResolvPlatform
	}
	obj := newBox(x, y, w, h, tag)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	speed, wait := waypointTuning(opts.MoveSpeed, opts.WaitTime)
	components.Waypoint.SetValue(platform, components.NewWaypointPath(opts.Path, gamemath.V2(x, y), speed, wait))

	addToSpace(ecs, obj)
	return platform
}
