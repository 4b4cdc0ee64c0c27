package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.NewPlayer(cfg.Player))
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health, gamemath.V2(x, y)))

	space := addToSpace(ecs, obj)

	// Feet sit directly under the body; they double as the stomp trigger
	feet := components.NewGroundProbe(space, obj, 0, h, w, cfg.Player.FeetHeight, tags.GroundTags, tags.ResolvFeet, tags.ResolvProbe)
	feet.LandingEffect = true
	feet.SurfaceOnly = true
	components.GroundProbe.SetValue(player, *feet)

	return player
}
