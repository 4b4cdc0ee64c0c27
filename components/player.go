package components

import (
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BounceHeldMultiplier scales a bounce while the jump button is held.
const BounceHeldMultiplier = 1.5

type PlayerData struct {
	MovementSpeed   float64
	JumpPower       float64
	AllowedJumps    int
	JumpDuration    float64
	PassThroughTags []string

	Facing     config.Facing
	State      config.PlayerState
	JumpsUsed  int
	Jumping    bool    // inside the active window of the last jump
	JumpEndsAt float64 // deadline for Jumping
}

// MotorInput is everything the motor reads in one tick.
type MotorInput struct {
	Horizontal  float64
	JumpStarted bool
	Grounded    bool
	Dead        bool
	Now         float64
}

func NewPlayer(c config.PlayerConfig) PlayerData {
	p := PlayerData{Facing: config.FacingRight}
	p.ApplyConfig(c)
	return p
}

// ApplyConfig copies tuning values without touching runtime state.
func (p *PlayerData) ApplyConfig(c config.PlayerConfig) {
	p.MovementSpeed = c.MovementSpeed
	p.JumpPower = c.JumpPower
	p.AllowedJumps = c.AllowedJumps
	p.JumpDuration = c.JumpDuration
	p.PassThroughTags = append([]string(nil), c.PassThroughTags...)
}

// Step runs one tick of the motor against body and reports whether a jump
// was started this tick.
func (p *PlayerData) Step(in MotorInput, body *PhysicsData) bool {
	if p.Jumping && in.Now >= p.JumpEndsAt {
		p.Jumping = false
	}
	if in.Dead {
		p.State = config.PlayerDead
	}

	body.SpeedX = 0
	if in.Horizontal != 0 && !in.Dead {
		body.SpeedX = p.MovementSpeed * in.Horizontal
	}
	if in.Grounded && !p.Jumping {
		body.SpeedY = 0
	}

	jumped := false
	if in.JumpStarted {
		jumped = p.RequestJump(1, in.Now, body)
	}

	if body.Ascending() {
		body.IgnoreTags = p.PassThroughTags
	} else {
		body.IgnoreTags = nil
	}

	if in.Horizontal > 0 {
		p.Facing = config.FacingRight
	} else if in.Horizontal < 0 {
		p.Facing = config.FacingLeft
	}

	p.classify(in.Grounded, in.Dead, body)
	return jumped
}

// RequestJump applies a jump impulse if the jump budget allows it.
func (p *PlayerData) RequestJump(multiplier, now float64, body *PhysicsData) bool {
	if p.JumpsUsed >= p.AllowedJumps || p.State == config.PlayerDead {
		return false
	}
	body.SpeedY = 0
	body.SpeedY -= p.JumpPower * multiplier
	p.JumpsUsed++
	p.Jumping = true
	p.JumpEndsAt = now + p.JumpDuration
	return true
}

// Bounce always grants a jump by clearing the budget first.
func (p *PlayerData) Bounce(jumpHeld bool, now float64, body *PhysicsData) bool {
	p.JumpsUsed = 0
	multiplier := 1.0
	if jumpHeld {
		multiplier = BounceHeldMultiplier
	}
	return p.RequestJump(multiplier, now, body)
}

func (p *PlayerData) classify(grounded, dead bool, body *PhysicsData) {
	switch {
	case dead:
		p.State = config.PlayerDead
	case grounded:
		if gamemath.V2(body.SpeedX, body.SpeedY).Length() > 0 {
			p.State = config.PlayerWalk
		} else {
			p.State = config.PlayerIdle
		}
		if !p.Jumping {
			p.JumpsUsed = 0
		}
	case p.Jumping:
		p.State = config.PlayerJump
	default:
		p.State = config.PlayerFall
	}
}

// FlipX reports whether a left-facing sprite should be mirrored.
func (p *PlayerData) FlipX() bool {
	return p.Facing == config.FacingLeft
}

var Player = donburi.NewComponentType[PlayerData]()
