package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints moves a player's respawn point to any checkpoint they
// enter. Only one checkpoint is active at a time.
func UpdateCheckpoints(ecs *ecs.ECS) {
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(e)
		obj := components.Object.Get(e)

		var current []donburi.Entity
		for _, o := range overlapping(obj.Object, 0, tags.ResolvPlayer) {
			if player, ok := entryOf(o); ok && alive(player) {
				current = append(current, player.Entity())
			}
		}

		for _, id := range checkpoint.Contacts.Refresh(current) {
			activateCheckpoint(ecs, e, ecs.World.Entry(id))
		}
	})
}

func activateCheckpoint(ecs *ecs.ECS, e, player *donburi.Entry) {
	checkpoint := components.Checkpoint.Get(e)
	components.Health.Get(player).SetRespawnPoint(checkpoint.Spawn)

	if !switchActiveCheckpoint(ecs, e) {
		return
	}
	obj := components.Object.Get(e)
	spawnEffect(ecs, cfg.EffectCheckpoint, obj.Center())
	components.CheckpointEvent.Publish(ecs.World, components.CheckpointEventData{
		ID:    checkpoint.ID,
		Spawn: checkpoint.Spawn,
	})
}

// switchActiveCheckpoint makes e the active checkpoint and reports whether
// that changed which checkpoint is active.
func switchActiveCheckpoint(ecs *ecs.ECS, e *donburi.Entry) bool {
	checkpoint := components.Checkpoint.Get(e)
	trackerEntry, ok := components.CheckpointTracker.First(ecs.World)
	if !ok {
		checkpoint.Active = true
		return false
	}
	prev, hadPrev, changed := components.CheckpointTracker.Get(trackerEntry).Switch(e.Entity())
	if hadPrev && changed && ecs.World.Valid(prev) {
		if prevEntry := ecs.World.Entry(prev); prevEntry.HasComponent(components.Checkpoint) {
			components.Checkpoint.Get(prevEntry).Active = false
		}
	}
	checkpoint.Active = true
	return changed
}

// RestoreCheckpoint activates the checkpoint with the given id and puts the
// player on it, as when resuming a saved run. It is silent: no effect or
// checkpoint event is issued. Returns false when either is missing.
func RestoreCheckpoint(ecs *ecs.ECS, id int) bool {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	var found *donburi.Entry
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Checkpoint.Get(e).ID == id {
			found = e
		}
	})
	if found == nil {
		return false
	}

	switchActiveCheckpoint(ecs, found)
	components.Health.Get(player).SetRespawnPoint(components.Checkpoint.Get(found).Spawn)
	respawn(player)
	return true
}
