package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The session entity carries every singleton. Systems run before it exists
// are no-ops, so helpers return zero values instead of panicking.

func clockOf(ecs *ecs.ECS) *components.ClockData {
	if e, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(e)
	}
	return &components.ClockData{}
}

func pendingOf(ecs *ecs.ECS) *components.PendingData {
	if e, ok := components.Pending.First(ecs.World); ok {
		return components.Pending.Get(e)
	}
	return &components.PendingData{}
}

func keyRingOf(ecs *ecs.ECS) *components.KeyRingData {
	if e, ok := components.KeyRing.First(ecs.World); ok {
		return components.KeyRing.Get(e)
	}
	return nil
}

// spawnEffect announces an effect now and creates its entity when the
// effects system runs.
func spawnEffect(ecs *ecs.ECS, kind cfg.EffectKind, pos gamemath.Vec3) {
	components.EffectEvent.Publish(ecs.World, components.EffectEventData{Kind: kind, Position: pos})
	pendingOf(ecs).QueueEffect(kind, pos)
}

// destroy takes an entity's collision objects out of the space immediately
// and removes the entity itself at the end of the tick.
func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		removeObject(components.Object.Get(e).Object)
	}
	if e.HasComponent(components.GroundProbe) {
		components.GroundProbe.Get(e).Remove()
	}
	if e.HasComponent(components.Head) {
		removeObject(components.Head.Get(e).Object)
	}
	if e.HasComponent(components.Enemy) {
		for _, probe := range components.Enemy.Get(e).Probes() {
			probe.Remove()
		}
	}
	pendingOf(ecs).QueueRemoval(e.Entity())
}

// alive reports whether e exists and, if it has health, is above zero.
func alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.Health) {
		return components.Health.Get(e).Alive()
	}
	return true
}

// UpdateRemovals applies the removals queued during the tick.
func UpdateRemovals(ecs *ecs.ECS) {
	pending := pendingOf(ecs)
	for _, id := range pending.Removals {
		if ecs.World.Valid(id) {
			ecs.World.Remove(id)
		}
	}
	pending.Removals = pending.Removals[:0]
}

// ProcessEvents delivers the tick's notifications to subscribers.
func ProcessEvents(ecs *ecs.ECS) {
	components.ScoreEvent.ProcessEvents(ecs.World)
	components.UIEvent.ProcessEvents(ecs.World)
	components.EffectEvent.ProcessEvents(ecs.World)
	components.CheckpointEvent.ProcessEvents(ecs.World)
	components.LevelClearedEvent.ProcessEvents(ecs.World)
	components.GameOverEvent.ProcessEvents(ecs.World)
}
