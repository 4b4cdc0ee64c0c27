package components

import (
	"testing"

	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func livesConfig(lives int, wait float64) config.HealthConfig {
	return config.HealthConfig{
		TeamID:            0,
		DefaultHealth:     3,
		MaximumHealth:     5,
		InvincibilityTime: 1,
		UseLives:          true,
		Lives:             lives,
		MaximumLives:      5,
		RespawnWaitTime:   wait,
	}
}

func TestHealth_TakeDamageStartsInvincibility(t *testing.T) {
	h := NewHealth(livesConfig(3, 0), gamemath.Vec3{})

	out := h.TakeDamage(1, 10)
	assert.True(t, out.Has(HealthHit|HealthChanged))
	assert.Equal(t, 2, h.Current)
	assert.True(t, h.Invincible)
	assert.Equal(t, 11.0, h.InvincibleUntil)

	// Ignored while invincible
	assert.Zero(t, h.TakeDamage(1, 10.5))
	assert.Equal(t, 2, h.Current)

	h.Update(10.99)
	assert.True(t, h.Invincible)
	h.Update(11)
	assert.False(t, h.Invincible)

	h.TakeDamage(1, 11)
	assert.Equal(t, 1, h.Current)
}

func TestHealth_HealingClampsAndSkipsDead(t *testing.T) {
	h := NewHealth(livesConfig(3, 1), gamemath.Vec3{})

	h.ReceiveHealing(10, 0)
	assert.Equal(t, 5, h.Current)

	h.Kill(0)
	assert.Zero(t, h.ReceiveHealing(2, 0))
	assert.Equal(t, 0, h.Current)
}

func TestHealth_ImmediateRespawn(t *testing.T) {
	h := NewHealth(livesConfig(3, 0), gamemath.V2(5, 5))

	out := h.TakeDamage(3, 0)
	assert.True(t, out.Has(HealthDied))
	assert.True(t, out.Has(HealthRespawned))
	assert.False(t, out.Has(HealthGameOver))
	assert.Equal(t, 3, h.Current)
	assert.Equal(t, 2, h.Lives)
}

func TestHealth_DelayedRespawn(t *testing.T) {
	h := NewHealth(livesConfig(2, 2), gamemath.Vec3{})

	out := h.TakeDamage(5, 1)
	assert.True(t, out.Has(HealthDied))
	assert.False(t, out.Has(HealthRespawned))
	assert.True(t, h.RespawnPending)
	assert.Equal(t, 3.0, h.RespawnAt)
	assert.Equal(t, 1, h.Lives)

	assert.False(t, h.Update(2.9).Has(HealthRespawned))
	assert.True(t, h.Update(3).Has(HealthRespawned))
	assert.Equal(t, h.Default, h.Current)
	assert.False(t, h.RespawnPending)
}

func TestHealth_LastLife(t *testing.T) {
	t.Run("with wait arms a timer that never fires", func(t *testing.T) {
		h := NewHealth(livesConfig(1, 2), gamemath.Vec3{})

		out := h.TakeDamage(5, 0)
		assert.True(t, out.Has(HealthGameOver))
		assert.False(t, out.Has(HealthDestroyed))
		assert.True(t, h.RespawnPending)
		assert.Equal(t, 0, h.Lives)

		assert.False(t, h.Update(100).Has(HealthRespawned))
		assert.LessOrEqual(t, h.Current, 0)
	})

	t.Run("without wait is destroyed", func(t *testing.T) {
		h := NewHealth(livesConfig(1, 0), gamemath.Vec3{})

		out := h.TakeDamage(5, 0)
		assert.True(t, out.Has(HealthGameOver|HealthDestroyed))
	})

	t.Run("without lives is destroyed", func(t *testing.T) {
		c := livesConfig(0, 0)
		c.UseLives = false
		h := NewHealth(c, gamemath.Vec3{})

		out := h.TakeDamage(3, 0)
		assert.True(t, out.Has(HealthDied|HealthGameOver|HealthDestroyed))
	})
}

func TestHealth_AddLives(t *testing.T) {
	h := NewHealth(livesConfig(4, 0), gamemath.Vec3{})
	h.AddLives(3)
	assert.Equal(t, 5, h.Lives)

	c := livesConfig(0, 0)
	c.UseLives = false
	noLives := NewHealth(c, gamemath.Vec3{})
	assert.Zero(t, noLives.AddLives(1))
	assert.Equal(t, 0, noLives.Lives)
}

func TestHealth_KillIgnoresInvincibility(t *testing.T) {
	h := NewHealth(livesConfig(3, 1), gamemath.Vec3{})
	h.TakeDamage(1, 0)
	assert.True(t, h.Invincible)

	out := h.Kill(0.1)
	assert.True(t, out.Has(HealthDied))
	assert.Equal(t, 0, h.Current)
	assert.Zero(t, h.Kill(0.2))
}
