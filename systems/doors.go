package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors tries to open closed doors when a player first touches them.
// An opened door leaves the collision space.
func UpdateDoors(ecs *ecs.ECS) {
	keys := keyRingOf(ecs)
	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.IsOpen {
			return
		}
		obj := components.Object.Get(e)

		var current []donburi.Entity
		for _, o := range overlapping(obj.Object, collisionMargin, tags.ResolvPlayer) {
			if player, ok := entryOf(o); ok && alive(player) {
				current = append(current, player.Entity())
			}
		}

		for range door.Contacts.Refresh(current) {
			switch door.AttemptToOpen(keys) {
			case components.DoorOpened:
				spawnEffect(ecs, cfg.EffectDoorOpen, obj.Center())
				removeObject(obj.Object)
				return
			case components.DoorLocked:
				spawnEffect(ecs, cfg.EffectDoorLocked, obj.Center())
			}
		}
	})
}
