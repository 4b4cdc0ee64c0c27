package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects spawns the effects requested this tick, fades every effect
// and removes the finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	pending := pendingOf(ecs)
	for _, req := range pending.Effects {
		factory.CreateEffect(ecs, req.Kind, req.Position)
	}
	pending.Effects = pending.Effects[:0]

	dt := float32(clockOf(ecs).Delta)
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Tween == nil {
			pending.QueueRemoval(e.Entity())
			return
		}
		alpha, finished := fx.Tween.Update(dt)
		fx.Alpha = alpha
		if finished {
			pending.QueueRemoval(e.Entity())
		}
	})
}
