package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLaser fires a laser from the owner's side it is facing, at the
// height of its center. The laser carries the owner's team so it never hurts
// its own side, and is used up by the first target it damages.
func CreateLaser(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	laser := archetypes.Laser.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	facing := components.Player.Get(owner).Facing

	w, h := cfg.Laser.Width, cfg.Laser.Height
	startX := ownerObj.X + ownerObj.W
	velocityX := cfg.Laser.Speed
	if facing == cfg.FacingLeft {
		startX = ownerObj.X - w
		velocityX = -velocityX
	}
	startY := ownerObj.Y + ownerObj.H/2 - h/2

	obj := newBox(startX, startY, w, h, tags.ResolvLaser)
	obj.Data = laser
	components.Object.SetValue(laser, components.ObjectData{Object: obj})

	team := 0
	if owner.HasComponent(components.Health) {
		team = components.Health.Get(owner).TeamID
	}
	components.Damage.SetValue(laser, components.DamageData{
		TeamID:             team,
		Amount:             cfg.Laser.Damage,
		DestroyAfterDamage: true,
		OnTriggerEnter:     true,
	})
	components.Laser.SetValue(laser, components.LaserData{
		VelocityX: velocityX,
		Lifetime:  gween.New(0, 1, float32(cfg.Laser.Lifetime), ease.Linear),
	})

	addToSpace(ecs, obj)
	return laser
}
