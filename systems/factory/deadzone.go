package factory

import (
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible collision zone that kills whatever
// falls into it.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := newBox(x, y, w, h, tags.ResolvDeadZone)
	addToSpace(ecs, obj)
	return obj
}
