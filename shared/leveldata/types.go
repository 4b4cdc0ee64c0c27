// Package leveldata provides TMX level parsing for the simulation.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import "github.com/automoto/hopper/shared/gamemath"

// Level holds everything the simulation spawns from a TMX level file.
type Level struct {
	Name   string
	Width  int
	Height int

	PlayerSpawn    gamemath.Vec3
	HasPlayerSpawn bool

	Solids          []Rect
	Platforms       []Rect // one-way, block only from above
	Paths           map[string]Path
	MovingPlatforms []MovingPlatformSpawn
	Enemies         []EnemySpawn
	Pickups         []PickupSpawn
	Doors           []DoorSpawn
	Checkpoints     []CheckpointSpawn
	Hazards         []HazardSpawn
	DeadZones       []Rect
}

// Rect is an axis-aligned box in world units, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Path is a named polyline in world coordinates.
type Path struct {
	Name   string
	Points []gamemath.Vec3
}

type MovingPlatformSpawn struct {
	Rect
	Path   string
	Speed  float64 // 0 uses the configured default
	Wait   float64 // negative uses the configured default
	OneWay bool
}

type EnemySpawn struct {
	X, Y       float64
	Kind       string // "walking" or "flying"
	Direction  string // walking only: "left", "right" or ""
	TurnAtEdge bool
	Path       string // flying only
	Speed      float64
	Wait       float64
}

type PickupSpawn struct {
	Rect
	Kind   string
	Amount int
	KeyID  int
}

type DoorSpawn struct {
	Rect
	ID int
}

type CheckpointSpawn struct {
	Rect
	ID int
}

type HazardSpawn struct {
	Rect
	Damage             int
	TeamID             int
	Stay               bool
	DestroyAfterDamage bool
}

// PathPoints returns the points of a named path, or nil.
func (l *Level) PathPoints(name string) []gamemath.Vec3 {
	if p, ok := l.Paths[name]; ok {
		return p.Points
	}
	return nil
}
