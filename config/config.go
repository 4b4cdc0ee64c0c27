package config

// Config holds window and loop settings for the desktop client and the
// headless runner.
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// HealthConfig is the spawn-time configuration of a HealthState.
type HealthConfig struct {
	TeamID            int     `yaml:"team_id"`
	DefaultHealth     int     `yaml:"default_health"`
	MaximumHealth     int     `yaml:"maximum_health"`
	InvincibilityTime float64 `yaml:"invincibility_time"` // seconds
	UseLives          bool    `yaml:"use_lives"`
	Lives             int     `yaml:"lives"`
	MaximumLives      int     `yaml:"maximum_lives"`
	RespawnWaitTime   float64 `yaml:"respawn_wait_time"` // seconds, 0 = immediate
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MovementSpeed float64 `yaml:"movement_speed"` // units per second at full input
	JumpPower     float64 `yaml:"jump_power"`     // upward speed added by a jump
	AllowedJumps  int     `yaml:"allowed_jumps"`
	JumpDuration  float64 `yaml:"jump_duration"` // seconds spent in the Jump state

	// Tags the player passes through while moving upwards
	PassThroughTags []string `yaml:"pass_through_tags"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	FeetHeight      float64 `yaml:"feet_height"`

	Health HealthConfig `yaml:"health"`
}

// EnemyConfig contains defaults for enemies spawned without explicit values
type EnemyConfig struct {
	MoveSpeed       float64      `yaml:"move_speed"`
	TurnAtEdge      bool         `yaml:"turn_at_edge"`
	ContactDamage   int          `yaml:"contact_damage"`
	HeadDamage      int          `yaml:"head_damage"`
	CollisionWidth  float64      `yaml:"collision_width"`
	CollisionHeight float64      `yaml:"collision_height"`
	ProbeSize       float64      `yaml:"probe_size"`
	Health          HealthConfig `yaml:"health"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // units per second squared
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // units per second
	CellSize     int     `yaml:"cell_size"`      // resolv space cell size
}

// WaypointConfig holds defaults for moving platforms and flying enemies
type WaypointConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	WaitTime  float64 `yaml:"wait_time"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Style                 CameraStyle `yaml:"style"`
	MaxDistanceFromTarget float64     `yaml:"max_distance_from_target"`
	OffsetX               float64     `yaml:"offset_x"`
	OffsetY               float64     `yaml:"offset_y"`
}

// EffectsConfig controls how long spawned effects live
type EffectsConfig struct {
	Lifetime float64 `yaml:"lifetime"` // seconds
}

// LaserConfig tunes the player's projectile
type LaserConfig struct {
	Speed    float64 `yaml:"speed"`    // units per second along the facing
	Lifetime float64 `yaml:"lifetime"` // seconds before the laser is removed
	Damage   int     `yaml:"damage"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// SimConfig bounds the simulation step
type SimConfig struct {
	// MaxDelta caps a single tick's dt so a stalled frame cannot tunnel
	// bodies through thin platforms.
	MaxDelta float64 `yaml:"max_delta"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Waypoint WaypointConfig
var Camera CameraConfig
var Effects EffectsConfig
var Laser LaserConfig
var Sim SimConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity:      1200,
		MaxFallSpeed: 600,
		CellSize:     16,
	}

	Player = PlayerConfig{
		MovementSpeed:   120,
		JumpPower:       420,
		AllowedJumps:    1,
		JumpDuration:    0.1,
		PassThroughTags: []string{"platform"},

		CollisionWidth:  14,
		CollisionHeight: 28,
		FeetHeight:      2,

		Health: HealthConfig{
			TeamID:            0,
			DefaultHealth:     3,
			MaximumHealth:     3,
			InvincibilityTime: 1.5,
			UseLives:          true,
			Lives:             3,
			MaximumLives:      5,
			RespawnWaitTime:   3,
		},
	}

	Enemy = EnemyConfig{
		MoveSpeed:       40,
		TurnAtEdge:      true,
		ContactDamage:   1,
		HeadDamage:      1,
		CollisionWidth:  16,
		CollisionHeight: 16,
		ProbeSize:       2,
		Health: HealthConfig{
			TeamID:            1,
			DefaultHealth:     1,
			MaximumHealth:     1,
			InvincibilityTime: 0.5,
			UseLives:          false,
			Lives:             0,
			MaximumLives:      0,
			RespawnWaitTime:   0,
		},
	}

	Waypoint = WaypointConfig{
		MoveSpeed: 32,
		WaitTime:  1,
	}

	Camera = CameraConfig{
		Style:                 CameraOffsetFollow,
		MaxDistanceFromTarget: 48,
		OffsetX:               0,
		OffsetY:               -24,
	}

	Effects = EffectsConfig{
		Lifetime: 0.5,
	}

	Laser = LaserConfig{
		Speed:    80,
		Lifetime: 3,
		Damage:   1,
		Width:    8,
		Height:   2,
	}

	Sim = SimConfig{
		MaxDelta: 1.0 / 20,
	}
}
