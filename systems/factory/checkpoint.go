package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint trigger. The respawn position puts a
// player's feet on the checkpoint's bottom edge, centered horizontally.
func CreateCheckpoint(ecs *ecs.ECS, x, y, w, h float64, checkpointID int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := newBox(x, y, w, h, tags.ResolvCheckpoint)
	obj.Data = checkpoint
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	spawn := gamemath.V2(
		x+w/2-cfg.Player.CollisionWidth/2,
		y+h-cfg.Player.CollisionHeight,
	)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:    checkpointID,
		Spawn: spawn,
	})

	addToSpace(ecs, obj)
	return checkpoint
}
