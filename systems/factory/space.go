package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace adds obj to the world's space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) *resolv.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	return space
}

// newBox creates a rectangle-shaped object the way every static body is made.
func newBox(x, y, w, h float64, objTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
