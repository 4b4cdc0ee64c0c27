package components

import (
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WaypointData moves its owner along a closed list of points, pausing at
// each one for WaitTime.
type WaypointData struct {
	Points    []gamemath.Vec3
	Index     int
	Previous  gamemath.Vec3
	Current   gamemath.Vec3
	Direction gamemath.Vec3 // unit vector from Previous to Current

	MoveSpeed float64
	WaitTime  float64

	Stopped  bool
	ResumeAt float64
}

// NewWaypointPath starts a path at start heading for points[0]. An empty
// point list becomes a single stationary point at start.
func NewWaypointPath(points []gamemath.Vec3, start gamemath.Vec3, moveSpeed, waitTime float64) WaypointData {
	if len(points) == 0 {
		points = []gamemath.Vec3{start}
	}
	w := WaypointData{
		Points:    append([]gamemath.Vec3(nil), points...),
		Previous:  start,
		MoveSpeed: moveSpeed,
		WaitTime:  waitTime,
	}
	w.Current = w.Points[0]
	w.Direction = w.Current.Sub(w.Previous).Normalized()
	return w
}

// Advance returns the owner's position after one tick.
func (w *WaypointData) Advance(pos gamemath.Vec3, dt, now float64) gamemath.Vec3 {
	if len(w.Points) == 0 {
		return pos
	}
	if w.Stopped {
		if now >= w.ResumeAt {
			w.nextLeg()
		}
		return pos
	}

	pos = pos.Add(w.Direction.Scale(w.MoveSpeed * dt))
	delta := w.Current.Sub(pos)

	reachedX := axisReached(delta.X, w.Direction.X)
	if reachedX {
		pos.X = w.Current.X
	}
	reachedY := axisReached(delta.Y, w.Direction.Y)
	if reachedY {
		pos.Y = w.Current.Y
	}
	reachedZ := axisReached(delta.Z, w.Direction.Z)
	if reachedZ {
		pos.Z = w.Current.Z
	}

	if reachedX && reachedY && reachedZ {
		w.Stopped = true
		w.ResumeAt = now + w.WaitTime
	}
	return pos
}

func (w *WaypointData) nextLeg() {
	w.Stopped = false
	w.Index = (w.Index + 1) % len(w.Points)
	w.Previous = w.Current
	w.Current = w.Points[w.Index]
	w.Direction = w.Current.Sub(w.Previous).Normalized()
}

// An axis is done once nothing is left to travel or the remaining distance
// points against the travel direction.
func axisReached(remaining, direction float64) bool {
	return remaining == 0 || gamemath.Sign(remaining) != gamemath.Sign(direction)
}

var Waypoint = donburi.NewComponentType[WaypointData]()
