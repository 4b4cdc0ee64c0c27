package components

import (
	"testing"

	"github.com/automoto/hopper/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run advances w from pos in steps of dt, starting the clock at *now.
func run(w *WaypointData, pos gamemath.Vec3, now *float64, dt float64, steps int) gamemath.Vec3 {
	for i := 0; i < steps; i++ {
		*now += dt
		pos = w.Advance(pos, dt, *now)
	}
	return pos
}

func TestWaypoint_TravelWaitAndWrap(t *testing.T) {
	points := []gamemath.Vec3{gamemath.V2(0, 0), gamemath.V2(10, 0)}
	w := NewWaypointPath(points, gamemath.V2(0, 0), 10, 1)
	now := 0.0

	// Starts on the first point, so it waits there first.
	pos := w.Advance(gamemath.V2(0, 0), 0, now)
	require.True(t, w.Stopped)
	assert.Equal(t, 1.0, w.ResumeAt)

	now = 1
	pos = w.Advance(pos, 0, now)
	require.False(t, w.Stopped)
	assert.Equal(t, gamemath.V2(10, 0), w.Current)
	assert.Equal(t, gamemath.V2(1, 0), w.Direction)

	// One time unit of travel reaches the target exactly.
	pos = run(&w, pos, &now, 0.25, 3)
	assert.False(t, w.Stopped)
	pos = run(&w, pos, &now, 0.25, 1)
	assert.Equal(t, gamemath.V2(10, 0), pos)
	assert.True(t, w.Stopped)

	// One more time unit of waiting heads back to the start.
	pos = run(&w, pos, &now, 0.25, 3)
	assert.True(t, w.Stopped)
	pos = run(&w, pos, &now, 0.25, 1)
	assert.False(t, w.Stopped)
	assert.Equal(t, 0, w.Index)
	assert.Equal(t, gamemath.V2(0, 0), w.Current)
	assert.Equal(t, gamemath.V2(-1, 0), w.Direction)
	assert.Equal(t, gamemath.V2(10, 0), pos, "no movement on the tick the wait ends")
}

func TestWaypoint_SnapsInsteadOfOvershooting(t *testing.T) {
	w := NewWaypointPath([]gamemath.Vec3{gamemath.V2(10, 5)}, gamemath.V2(0, 5), 10, 0)
	now := 0.0

	pos := run(&w, gamemath.V2(0, 5), &now, 0.3, 3)
	assert.InDelta(t, 9, pos.X, 1e-9)
	assert.False(t, w.Stopped)

	pos = run(&w, pos, &now, 0.3, 1)
	assert.Equal(t, gamemath.V2(10, 5), pos)
	assert.True(t, w.Stopped)
}

func TestWaypoint_DiagonalSnapsPerAxis(t *testing.T) {
	w := NewWaypointPath([]gamemath.Vec3{{X: 3, Y: -4}}, gamemath.Vec3{}, 5, 0)
	now := 0.0

	pos := run(&w, gamemath.Vec3{}, &now, 0.5, 1)
	assert.InDelta(t, 1.5, pos.X, 1e-9)
	assert.InDelta(t, -2, pos.Y, 1e-9)

	pos = run(&w, pos, &now, 0.6, 1)
	assert.Equal(t, gamemath.Vec3{X: 3, Y: -4}, pos)
	assert.True(t, w.Stopped)
}

func TestWaypoint_EmptyPathStaysPut(t *testing.T) {
	start := gamemath.V2(7, 8)
	w := NewWaypointPath(nil, start, 10, 0.5)
	require.Len(t, w.Points, 1)
	assert.Equal(t, start, w.Points[0])

	now := 0.0
	pos := run(&w, start, &now, 0.1, 20)
	assert.Equal(t, start, pos)
}
