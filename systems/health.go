package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth clears expired invincibility and performs due respawns.
func UpdateHealth(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		applyHealthOutcome(ecs, e, health.Update(now))
	})
}

// applyHealthOutcome turns the result of a health operation into effects,
// repositioning, removal and notifications.
func applyHealthOutcome(ecs *ecs.ECS, e *donburi.Entry, out components.HealthOutcome) {
	if out == 0 || !e.Valid() {
		return
	}
	obj := components.Object.Get(e)
	isPlayer := e.HasComponent(tags.Player)

	if out.Has(components.HealthHit) {
		spawnEffect(ecs, cfg.EffectHit, obj.Center())
	}
	if out.Has(components.HealthDied) {
		spawnEffect(ecs, cfg.EffectDeath, obj.Center())
	}
	if out.Has(components.HealthRespawned) {
		respawn(e)
	}
	if out.Has(components.HealthChanged) && isPlayer {
		components.UIEvent.Publish(ecs.World, components.UIEventData{})
	}
	if out.Has(components.HealthGameOver) && isPlayer {
		components.GameOverEvent.Publish(ecs.World, components.GameOverEventData{})
	}
	if out.Has(components.HealthDestroyed) {
		destroy(ecs, e)
	}
}

// respawn moves a revived entity back to its respawn point at rest.
func respawn(e *donburi.Entry) {
	health := components.Health.Get(e)
	obj := components.Object.Get(e)
	obj.SetPosition(health.RespawnPosition)

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
		physics.IgnoreTags = nil
	}
	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		player.Jumping = false
		player.JumpsUsed = 0
	}
	if e.HasComponent(components.GroundProbe) {
		components.GroundProbe.Get(e).Follow(obj.X, obj.Y)
	}
}
