package systems

import (
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// riderTolerance is how far a body's feet may be from a platform's top and
// still ride it.
const riderTolerance = 1.0

// UpdateWaypoints advances every path-following entity. Moving platforms
// carry the characters standing on them by the same delta.
func UpdateWaypoints(ecs *ecs.ECS) {
	clock := clockOf(ecs)
	components.Waypoint.Each(ecs.World, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		path := components.Waypoint.Get(e)
		obj := components.Object.Get(e)

		var riders []*resolv.Object
		if e.HasComponent(tags.MovingPlatform) {
			riders = ridersOn(obj.Object)
		}

		before := obj.Position()
		after := path.Advance(before, clock.Delta, clock.Now)
		if after == before {
			return
		}
		obj.SetPosition(after)

		delta := after.Sub(before)
		for _, rider := range riders {
			rider.X += delta.X
			rider.Y += delta.Y
			rider.Update()
		}
	})
}

// ridersOn returns the characters whose feet rest on top of platform.
func ridersOn(platform *resolv.Object) []*resolv.Object {
	check := platform.Check(0, -2*riderTolerance, tags.ResolvCharacter)
	if check == nil {
		return nil
	}
	var riders []*resolv.Object
	for _, o := range check.ObjectsByTags(tags.ResolvCharacter) {
		bottom := o.Y + o.H
		if bottom < platform.Y-riderTolerance || bottom > platform.Y+riderTolerance {
			continue
		}
		if overlapsHorizontally(o, platform) {
			riders = append(riders, o)
		}
	}
	return riders
}
