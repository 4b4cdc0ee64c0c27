package components

import (
	"testing"

	"github.com/automoto/hopper/config"
	"github.com/stretchr/testify/assert"
)

func testMotor(allowedJumps int) (PlayerData, *PhysicsData) {
	p := NewPlayer(config.PlayerConfig{
		MovementSpeed:   100,
		JumpPower:       300,
		AllowedJumps:    allowedJumps,
		JumpDuration:    0.2,
		PassThroughTags: []string{"platform"},
	})
	return p, &PhysicsData{}
}

func TestPlayer_SingleJumpArbitration(t *testing.T) {
	p, body := testMotor(1)

	jumped := p.Step(MotorInput{Grounded: true, JumpStarted: true, Now: 0}, body)
	assert.True(t, jumped)
	assert.Equal(t, 1, p.JumpsUsed)
	assert.Equal(t, -300.0, body.SpeedY)
	assert.Equal(t, config.PlayerWalk, p.State, "still touching the ground on the jump tick")

	// Airborne and jump window still open.
	body.SpeedY = -250
	jumped = p.Step(MotorInput{JumpStarted: true, Now: 0.1}, body)
	assert.False(t, jumped)
	assert.Equal(t, 1, p.JumpsUsed)
	assert.Equal(t, -250.0, body.SpeedY, "a refused jump adds no impulse")
	assert.Equal(t, config.PlayerJump, p.State)

	body.SpeedY = 50
	p.Step(MotorInput{Now: 0.3}, body)
	assert.False(t, p.Jumping)
	assert.Equal(t, config.PlayerFall, p.State)

	// Landing resets the budget.
	p.Step(MotorInput{Grounded: true, Now: 0.5}, body)
	assert.Equal(t, 0, p.JumpsUsed)
	assert.Equal(t, config.PlayerIdle, p.State)
	assert.Zero(t, body.SpeedY)
}

func TestPlayer_DoubleJump(t *testing.T) {
	p, body := testMotor(2)

	assert.True(t, p.Step(MotorInput{Grounded: true, JumpStarted: true}, body))
	assert.True(t, p.Step(MotorInput{JumpStarted: true, Now: 0.05}, body))
	assert.False(t, p.Step(MotorInput{JumpStarted: true, Now: 0.1}, body))
	assert.Equal(t, 2, p.JumpsUsed)
}

func TestPlayer_BounceAlwaysJumps(t *testing.T) {
	p, body := testMotor(1)
	p.JumpsUsed = 1

	assert.True(t, p.Bounce(false, 0, body))
	assert.Equal(t, 1, p.JumpsUsed)
	assert.Equal(t, -300.0, body.SpeedY)

	assert.True(t, p.Bounce(true, 0, body))
	assert.Equal(t, -300*BounceHeldMultiplier, body.SpeedY)
}

func TestPlayer_WalkAndFacing(t *testing.T) {
	p, body := testMotor(1)

	p.Step(MotorInput{Grounded: true, Horizontal: -0.5}, body)
	assert.Equal(t, -50.0, body.SpeedX)
	assert.Equal(t, config.PlayerWalk, p.State)
	assert.Equal(t, config.FacingLeft, p.Facing)
	assert.True(t, p.FlipX())

	// Facing survives releasing the stick.
	p.Step(MotorInput{Grounded: true}, body)
	assert.Zero(t, body.SpeedX)
	assert.Equal(t, config.PlayerIdle, p.State)
	assert.Equal(t, config.FacingLeft, p.Facing)

	p.Step(MotorInput{Grounded: true, Horizontal: 1}, body)
	assert.Equal(t, config.FacingRight, p.Facing)
}

func TestPlayer_PassThroughWhileAscending(t *testing.T) {
	p, body := testMotor(1)

	p.Step(MotorInput{Grounded: true, JumpStarted: true}, body)
	assert.True(t, body.Ignores("platform"))
	assert.Equal(t, []string{"solid"}, body.BlockingTags("solid", "platform"))

	body.SpeedY = 10
	p.Step(MotorInput{Now: 0.5}, body)
	assert.False(t, body.Ignores("platform"))
}

func TestPlayer_DeadTakesPriority(t *testing.T) {
	p, body := testMotor(1)
	p.Step(MotorInput{Grounded: true, JumpStarted: true}, body)
	assert.True(t, p.Jumping)

	jumped := p.Step(MotorInput{Dead: true, Horizontal: 1, JumpStarted: true, Now: 0.05}, body)
	assert.False(t, jumped)
	assert.Equal(t, config.PlayerDead, p.State)
	assert.Zero(t, body.SpeedX)
}
