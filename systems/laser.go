package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLasers moves live lasers, expires old ones and fires a new laser for
// every living player that pressed shoot this tick. Lasers ignore level
// geometry.
func UpdateLasers(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	tags.Laser.Each(ecs.World, func(e *donburi.Entry) {
		if !e.Valid() {
			return
		}
		laser := components.Laser.Get(e)
		dx, expired := laser.Advance(dt)
		if expired {
			destroy(ecs, e)
			return
		}
		obj := components.Object.Get(e)
		obj.X += dx
		obj.Update()
	})

	var shooters []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if alive(e) && components.PlayerInput.Get(e).ShootStarted {
			shooters = append(shooters, e)
		}
	})
	for _, owner := range shooters {
		laser := factory.CreateLaser(ecs, owner)
		spawnEffect(ecs, cfg.EffectShoot, components.Object.Get(laser).Center())
	}
}
