package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a static damage source such as spikes.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64, damage components.DamageData) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	obj := newBox(x, y, w, h, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Damage.SetValue(hazard, damage)
	addToSpace(ecs, obj)
	return hazard
}

func CreatePickup(ecs *ecs.ECS, x, y, w, h float64, pickup components.PickupData) *donburi.Entry {
	entry := archetypes.Pickup.Spawn(ecs)
	obj := newBox(x, y, w, h, tags.ResolvPickup)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Pickup.SetValue(entry, pickup)
	addToSpace(ecs, obj)
	return entry
}

// CreateDoor creates a closed door. Closed doors block like solids.
func CreateDoor(ecs *ecs.ECS, x, y, w, h float64, doorID int) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	obj := newBox(x, y, w, h, tags.ResolvDoor, tags.ResolvSolid)
	obj.Data = door
	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{ID: doorID})
	addToSpace(ecs, obj)
	return door
}
