package components

import (
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HealthOutcome reports what a health operation did so the caller can
// react (effects, repositioning, removal, notifications).
type HealthOutcome uint8

const (
	HealthChanged HealthOutcome = 1 << iota // displayed values changed
	HealthHit
	HealthDied
	HealthRespawned
	HealthGameOver
	HealthDestroyed
)

// Has reports whether every bit in f is set.
func (o HealthOutcome) Has(f HealthOutcome) bool {
	return o&f == f
}

type HealthData struct {
	TeamID  int
	Current int
	Max     int
	Default int

	InvincibilityTime float64
	Invincible        bool
	InvincibleUntil   float64

	UseLives bool
	Lives    int
	MaxLives int

	RespawnWaitTime float64
	RespawnAt       float64
	RespawnPending  bool
	RespawnPosition gamemath.Vec3
}

// NewHealth builds a HealthData at full default health that respawns at
// spawn.
func NewHealth(c config.HealthConfig, spawn gamemath.Vec3) HealthData {
	return HealthData{
		TeamID:            c.TeamID,
		Current:           c.DefaultHealth,
		Max:               c.MaximumHealth,
		Default:           c.DefaultHealth,
		InvincibilityTime: c.InvincibilityTime,
		UseLives:          c.UseLives,
		Lives:             c.Lives,
		MaxLives:          c.MaximumLives,
		RespawnWaitTime:   c.RespawnWaitTime,
		RespawnPosition:   spawn,
	}
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

// TakeDamage applies damage unless the entity is invincible or already dead.
// A hit always starts a new invincibility window.
func (h *HealthData) TakeDamage(amount int, now float64) HealthOutcome {
	if h.Invincible || h.Current <= 0 {
		return 0
	}
	h.InvincibleUntil = now + h.InvincibilityTime
	h.Invincible = true
	h.Current -= amount

	out := HealthHit | HealthChanged
	if h.Current <= 0 {
		out |= h.die(now)
	}
	return out
}

// ReceiveHealing raises health up to Max. Healing a dead entity does
// nothing; it is waiting for its respawn.
func (h *HealthData) ReceiveHealing(amount int, now float64) HealthOutcome {
	if h.Current <= 0 {
		return 0
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	out := HealthChanged
	if h.Current <= 0 {
		out |= h.die(now)
	}
	return out
}

// Kill drops health to zero regardless of invincibility.
func (h *HealthData) Kill(now float64) HealthOutcome {
	if h.Current <= 0 {
		return 0
	}
	h.Current = 0
	return HealthChanged | h.die(now)
}

// AddLives grants lives up to MaxLives. Entities without lives ignore it.
func (h *HealthData) AddLives(n int) HealthOutcome {
	if !h.UseLives {
		return 0
	}
	h.Lives += n
	if h.Lives > h.MaxLives {
		h.Lives = h.MaxLives
	}
	return HealthChanged
}

func (h *HealthData) SetRespawnPoint(p gamemath.Vec3) {
	h.RespawnPosition = p
}

// Update clears expired invincibility and performs a due respawn.
func (h *HealthData) Update(now float64) HealthOutcome {
	var out HealthOutcome
	if h.Invincible && h.InvincibleUntil <= now {
		h.Invincible = false
	}
	if h.RespawnWaitTime != 0 && h.Current <= 0 && h.Lives > 0 && now >= h.RespawnAt {
		out |= h.respawn()
	}
	return out
}

func (h *HealthData) die(now float64) HealthOutcome {
	out := HealthDied | HealthChanged
	if !h.UseLives {
		return out | HealthGameOver | HealthDestroyed
	}

	h.Lives--
	if h.Lives > 0 {
		if h.RespawnWaitTime == 0 {
			return out | h.respawn()
		}
		h.armRespawn(now)
		return out
	}

	// Out of lives. A non-zero wait still arms the timer; Update never
	// fires it because it requires lives left.
	out |= HealthGameOver
	if h.RespawnWaitTime != 0 {
		h.armRespawn(now)
	} else {
		out |= HealthDestroyed
	}
	return out
}

func (h *HealthData) armRespawn(now float64) {
	h.RespawnAt = now + h.RespawnWaitTime
	h.RespawnPending = true
}

func (h *HealthData) respawn() HealthOutcome {
	h.Current = h.Default
	h.RespawnPending = false
	return HealthRespawned | HealthChanged
}

var Health = donburi.NewComponentType[HealthData]()
