package components

import (
	"github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
)

// EnemyKind is the closed set of enemy movement behaviours.
type EnemyKind int

const (
	EnemyWalking EnemyKind = iota
	EnemyFlying
)

// ParseEnemyKind maps level-file names to a kind; unknown names walk.
func ParseEnemyKind(s string) EnemyKind {
	switch s {
	case "flying", "Flying", "flyer":
		return EnemyFlying
	}
	return EnemyWalking
}

func (k EnemyKind) String() string {
	if k == EnemyFlying {
		return "flying"
	}
	return "walking"
}

type EnemyData struct {
	Kind       EnemyKind
	MoveSpeed  float64
	Direction  config.WalkDirection
	TurnAtEdge bool

	State config.EnemyState
	FlipX bool

	// Probes owned by a walking enemy. Any of them may be nil.
	WallLeft  *GroundProbeData
	WallRight *GroundProbeData
	EdgeLeft  *GroundProbeData
	EdgeRight *GroundProbeData
}

// TurnAround reverses the patrol direction. None stays None.
func (e *EnemyData) TurnAround() {
	switch e.Direction {
	case config.WalkLeft:
		e.Direction = config.WalkRight
	case config.WalkRight:
		e.Direction = config.WalkLeft
	}
}

// DetermineWalkDirection flips the patrol when blocked by a wall or, if
// enabled, when about to walk off an edge.
func (e *EnemyData) DetermineWalkDirection() {
	if e.blockedByWall() || e.nearEdge() {
		e.TurnAround()
	}
}

func (e *EnemyData) blockedByWall() bool {
	probe := e.WallRight
	if e.Direction == config.WalkLeft {
		probe = e.WallLeft
	}
	if e.Direction == config.WalkNone || probe == nil {
		return false
	}
	grounded, _ := probe.CheckGrounded()
	return grounded
}

func (e *EnemyData) nearEdge() bool {
	probe := e.EdgeRight
	if e.Direction == config.WalkLeft {
		probe = e.EdgeLeft
	}
	if e.Direction == config.WalkNone || probe == nil {
		return false
	}
	grounded, _ := probe.CheckGrounded()
	return !grounded && e.TurnAtEdge
}

// WalkStep returns the horizontal displacement for dt and updates the
// animation state.
func (e *EnemyData) WalkStep(dt float64) float64 {
	var dir float64
	switch e.Direction {
	case config.WalkLeft:
		dir = config.DirectionLeft
	case config.WalkRight:
		dir = config.DirectionRight
	}
	if dir == 0 {
		e.State = config.EnemyIdle
	} else {
		e.State = config.EnemyWalking
	}
	e.FlipX = e.Direction == config.WalkRight
	return dir * e.MoveSpeed * dt
}

// FollowPath mirrors a waypoint path's state for a flying enemy.
func (e *EnemyData) FollowPath(w *WaypointData) {
	if w.Stopped {
		e.State = config.EnemyIdle
	} else {
		e.State = config.EnemyWalking
	}
	e.FlipX = w.Direction.X < 0
}

// Probes lists the non-nil probes owned by the enemy.
func (e *EnemyData) Probes() []*GroundProbeData {
	var out []*GroundProbeData
	for _, p := range []*GroundProbeData{e.WallLeft, e.WallRight, e.EdgeLeft, e.EdgeRight} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

var Enemy = donburi.NewComponentType[EnemyData]()
