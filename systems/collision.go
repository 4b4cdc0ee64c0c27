package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon treats bodies this close to a surface as touching it.
const contactEpsilon = 0.001

func UpdateCollisions(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
	})
}

// resolveHorizontalCollision moves object by dx, stopping flush against the
// first solid in the way. One-way platforms never block sideways.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	blocking := physics.BlockingTags(tags.ResolvSolid)
	blocked := false
	if len(blocking) > 0 {
		if check := object.Check(dx, 0, blocking...); check != nil {
			for _, solid := range check.ObjectsByTags(blocking...) {
				if !overlapsVertically(object, solid) {
					continue
				}
				if dx > 0 && solid.X >= object.X+object.W-contactEpsilon {
					if gap := solid.X - (object.X + object.W); gap < dx {
						dx = gap
						blocked = true
					}
				} else if dx < 0 && solid.X+solid.W <= object.X+contactEpsilon {
					if gap := solid.X + solid.W - object.X; gap > dx {
						dx = gap
						blocked = true
					}
				}
			}
		}
	}
	if blocked {
		physics.SpeedX = 0
	}

	object.X += dx
	object.Update()
}

// resolveVerticalCollision moves object by dy. Falling bodies land on solids
// and on one-way platforms they started above; rising bodies only bump into
// solids.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = false
	if dy == 0 {
		return
	}

	var blocking []string
	if dy > 0 {
		blocking = physics.BlockingTags(tags.ResolvSolid, tags.ResolvPlatform)
	} else {
		blocking = physics.BlockingTags(tags.ResolvSolid)
	}

	blocked := false
	if len(blocking) > 0 {
		if check := object.Check(0, dy, blocking...); check != nil {
			bottom := object.Y + object.H
			for _, o := range check.ObjectsByTags(blocking...) {
				if !overlapsHorizontally(object, o) {
					continue
				}
				if dy > 0 && o.Y >= bottom-contactEpsilon {
					if gap := o.Y - bottom; gap <= dy {
						dy = gap
						blocked = true
					}
				} else if dy < 0 && o.Y+o.H <= object.Y+contactEpsilon {
					if gap := o.Y + o.H - object.Y; gap >= dy {
						dy = gap
						blocked = true
					}
				}
			}
		}
	}

	if blocked {
		physics.OnGround = dy >= 0 && physics.SpeedY > 0
		physics.SpeedY = 0
	}

	object.Y += dy
	object.Update()
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}

// overlapping returns the objects with any of objTags that overlap obj,
// grown by margin on every side.
func overlapping(obj *resolv.Object, margin float64, objTags ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	offsets := [][2]float64{{0, 0}}
	if margin > 0 {
		offsets = append(offsets, [2]float64{-margin, 0}, [2]float64{margin, 0}, [2]float64{0, -margin}, [2]float64{0, margin})
	}

	var out []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for _, off := range offsets {
		check := obj.Check(off[0], off[1], objTags...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(objTags...) {
			if seen[o] {
				continue
			}
			if gamemath.Overlaps(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H, margin) {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// entryOf resolves the entity a collision object belongs to.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}

func removeObject(obj *resolv.Object) {
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}

// UpdateDeadZones kills every character that has fallen into a dead zone.
func UpdateDeadZones(ecs *ecs.ECS) {
	now := clockOf(ecs).Now
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if !health.Alive() {
			return
		}
		obj := components.Object.Get(e)
		if len(overlapping(obj.Object, 0, tags.ResolvDeadZone)) == 0 {
			return
		}
		applyHealthOutcome(ecs, e, health.Kill(now))
	})
}
