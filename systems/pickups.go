package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups lets players collect the pickups they walk into.
func UpdatePickups(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	keys := keyRingOf(ecs)
	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		obj := components.Object.Get(e)

		var current []donburi.Entity
		for _, o := range overlapping(obj.Object, 0, tags.ResolvPlayer) {
			if player, ok := entryOf(o); ok && alive(player) {
				current = append(current, player.Entity())
			}
		}

		for _, id := range pickup.Contacts.Refresh(current) {
			player := ecs.World.Entry(id)
			res := pickup.Collect(components.Health.Get(player), keys, now)
			applyHealthOutcome(ecs, player, res.Outcome)

			if res.Score != 0 {
				components.ScoreEvent.Publish(ecs.World, components.ScoreEventData{Amount: res.Score})
			}
			if res.LevelCleared {
				clearLevel(ecs)
			}
			if res.Consumed {
				spawnEffect(ecs, cfg.EffectPickup, obj.Center())
				components.UIEvent.Publish(ecs.World, components.UIEventData{})
				destroy(ecs, e)
				return
			}
		}
	})
}

func clearLevel(ecs *ecs.ECS) {
	if e, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(e).Cleared = true
	}
	components.LevelClearedEvent.Publish(ecs.World, components.LevelClearedEventData{})
}
