package components

import (
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID       int
	Spawn    gamemath.Vec3 // respawn position for a player body's top-left
	Active   bool
	Contacts Contacts
}

// CheckpointTrackerData records the single active checkpoint of a session.
type CheckpointTrackerData struct {
	Current    donburi.Entity
	HasCurrent bool
}

// Switch makes next the active checkpoint and returns the previous one.
// changed is false when next was already active.
func (t *CheckpointTrackerData) Switch(next donburi.Entity) (prev donburi.Entity, hadPrev, changed bool) {
	prev, hadPrev = t.Current, t.HasCurrent
	changed = !hadPrev || prev != next
	t.Current = next
	t.HasCurrent = true
	return prev, hadPrev, changed
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
var CheckpointTracker = donburi.NewComponentType[CheckpointTrackerData]()
