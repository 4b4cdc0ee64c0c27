package config

// PlayerState is the animation-facing classification of a player, derived
// every tick.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalk
	PlayerJump
	PlayerFall
	PlayerDead
)

var playerStateNames = map[PlayerState]string{
	PlayerIdle: "idle",
	PlayerWalk: "walk",
	PlayerJump: "jump",
	PlayerFall: "fall",
	PlayerDead: "dead",
}

func (s PlayerState) String() string {
	if name, ok := playerStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EnemyState is what enemy animators read.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyWalking
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyWalking:
		return "walking"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// Facing is the horizontal direction a character looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// WalkDirection is the one-dimensional patrol state of a walking enemy.
type WalkDirection int

const (
	WalkNone WalkDirection = iota
	WalkLeft
	WalkRight
)

// ParseWalkDirection maps level-file strings to a WalkDirection. Anything
// unrecognised is WalkNone.
func ParseWalkDirection(s string) WalkDirection {
	switch s {
	case "left", "Left":
		return WalkLeft
	case "right", "Right":
		return WalkRight
	}
	return WalkNone
}

// CameraStyle selects how the camera tracks its target.
type CameraStyle int

const (
	CameraLocked CameraStyle = iota
	CameraOverhead
	CameraDistanceFollow
	CameraOffsetFollow
)

var cameraStyleNames = map[string]CameraStyle{
	"locked":          CameraLocked,
	"overhead":        CameraOverhead,
	"distance_follow": CameraDistanceFollow,
	"offset_follow":   CameraOffsetFollow,
}

// EffectKind identifies a fire-and-forget visual/audio effect.
type EffectKind int

const (
	EffectLanding EffectKind = iota
	EffectJump
	EffectHit
	EffectDeath
	EffectDoorOpen
	EffectDoorLocked
	EffectPickup
	EffectCheckpoint
	EffectShoot
)

var effectNames = map[EffectKind]string{
	EffectLanding:    "landing",
	EffectJump:       "jump",
	EffectHit:        "hit",
	EffectDeath:      "death",
	EffectDoorOpen:   "door_open",
	EffectDoorLocked: "door_locked",
	EffectPickup:     "pickup",
	EffectCheckpoint: "checkpoint",
	EffectShoot:      "shoot",
}

func (k EffectKind) String() string {
	if name, ok := effectNames[k]; ok {
		return name
	}
	return "unknown"
}
