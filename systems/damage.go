package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionMargin lets solid-style damage sources hit bodies resting against
// them.
const collisionMargin = 1.0

// UpdateDamage applies every damage source to the characters it touches,
// according to the source's trigger flags.
func UpdateDamage(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	components.Damage.Each(ecs.World, func(src *donburi.Entry) {
		if !alive(src) {
			return
		}
		dmg := components.Damage.Get(src)
		obj := components.Object.Get(src)

		margin := 0.0
		if dmg.OnCollision {
			margin = collisionMargin
		}

		var targets []*donburi.Entry
		var current []donburi.Entity
		for _, o := range overlapping(obj.Object, margin, tags.ResolvCharacter) {
			target, ok := entryOf(o)
			if !ok || target.Entity() == src.Entity() || !target.HasComponent(components.Health) {
				continue
			}
			targets = append(targets, target)
			current = append(current, target.Entity())
		}

		entered := map[donburi.Entity]bool{}
		for _, id := range dmg.Contacts.Refresh(current) {
			entered[id] = true
		}

		for _, target := range targets {
			isNew := entered[target.Entity()]
			if !dmg.OnTriggerStay && !(isNew && (dmg.OnTriggerEnter || dmg.OnCollision)) {
				continue
			}
			res := components.ResolveDamage(dmg, components.Health.Get(target), now)
			if !res.Applied {
				continue
			}
			applyHealthOutcome(ecs, target, res.Outcome)
			if res.ConsumeSource {
				destroy(ecs, src)
				return
			}
		}
	})
}

// UpdateStomps damages enemies whose head a player's feet just entered and
// bounces the player.
func UpdateStomps(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	components.Head.Each(ecs.World, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		head := components.Head.Get(e)

		var current []donburi.Entity
		for _, o := range overlapping(head.Object, 0, tags.ResolvFeet) {
			player, ok := entryOf(o)
			if !ok || !player.HasComponent(components.Player) {
				continue
			}
			current = append(current, player.Entity())
		}

		for _, id := range head.Contacts.Refresh(current) {
			player := ecs.World.Entry(id)
			if !alive(player) {
				continue
			}
			if e.HasComponent(components.Health) {
				health := components.Health.Get(e)
				applyHealthOutcome(ecs, e, health.TakeDamage(head.Damage, now))
			}
			in := components.PlayerInput.Get(player)
			components.Player.Get(player).Bounce(in.JumpHeld, now, components.Physics.Get(player))
		}
	})
}
