package components

import (
	"testing"

	"github.com/automoto/hopper/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func target(team int) *HealthData {
	return &HealthData{TeamID: team, Current: 3, Max: 3, Default: 3, InvincibilityTime: 1}
}

func TestResolveDamage(t *testing.T) {
	tests := []struct {
		name        string
		source      DamageData
		targetTeam  int
		wantHealth  int
		wantApplied bool
		wantConsume bool
	}{
		{"same team is ignored", DamageData{TeamID: 1, Amount: 1}, 1, 3, false, false},
		{"other team takes damage", DamageData{TeamID: 1, Amount: 2}, 0, 1, true, false},
		{"destroy after damage", DamageData{TeamID: 1, Amount: 1, DestroyAfterDamage: true}, 0, 2, true, true},
		{"same team never consumes", DamageData{TeamID: 0, Amount: 1, DestroyAfterDamage: true}, 0, 3, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := target(tt.targetTeam)
			res := ResolveDamage(&tt.source, h, 0)
			assert.Equal(t, tt.wantHealth, h.Current)
			assert.Equal(t, tt.wantApplied, res.Applied)
			assert.Equal(t, tt.wantConsume, res.ConsumeSource)
		})
	}
}

func TestResolveDamage_InvincibleTargetStillConsumes(t *testing.T) {
	h := target(0)
	src := &DamageData{TeamID: 1, Amount: 1, DestroyAfterDamage: true}

	ResolveDamage(src, h, 0)
	res := ResolveDamage(src, h, 0.5)
	assert.Equal(t, 2, h.Current)
	assert.True(t, res.ConsumeSource)
	assert.Zero(t, res.Outcome)
}

func TestDoor_AttemptToOpen(t *testing.T) {
	keys := NewKeyRing()

	open := &DoorData{ID: UnlockedKeyID}
	assert.Equal(t, DoorOpened, open.AttemptToOpen(&keys))
	assert.Equal(t, DoorUnchanged, open.AttemptToOpen(&keys))

	locked := &DoorData{ID: 5}
	assert.Equal(t, DoorLocked, locked.AttemptToOpen(&keys))
	assert.False(t, locked.IsOpen)

	keys.AddKey(5)
	assert.Equal(t, DoorOpened, locked.AttemptToOpen(&keys))
	assert.True(t, locked.IsOpen)
}

func TestKeyRing(t *testing.T) {
	keys := NewKeyRing()
	assert.Equal(t, []int{0}, keys.Keys())
	assert.True(t, keys.HasKey(0))
	assert.False(t, keys.HasKey(3))

	keys.AddKey(3)
	keys.AddKey(1)
	assert.Equal(t, []int{0, 1, 3}, keys.Keys())

	keys.Clear()
	assert.Equal(t, []int{0}, keys.Keys())

	var zero KeyRingData
	assert.True(t, zero.HasKey(UnlockedKeyID))
	zero.AddKey(2)
	assert.Equal(t, []int{0, 2}, zero.Keys())
}

func TestPickup_Collect(t *testing.T) {
	keys := NewKeyRing()

	t.Run("health waits until hurt", func(t *testing.T) {
		h := target(0)
		p := PickupData{Kind: PickupHealth, Amount: 1}
		assert.False(t, p.Collect(h, &keys, 0).Consumed)

		h.Current = 1
		res := p.Collect(h, &keys, 0)
		assert.True(t, res.Consumed)
		assert.Equal(t, 2, h.Current)
	})

	t.Run("full heal", func(t *testing.T) {
		h := target(0)
		h.Current = 1
		p := PickupData{Kind: PickupFullHeal}
		assert.True(t, p.Collect(h, &keys, 0).Consumed)
		assert.Equal(t, 3, h.Current)
	})

	t.Run("key", func(t *testing.T) {
		p := PickupData{Kind: PickupKey, KeyID: 7}
		assert.True(t, p.Collect(target(0), &keys, 0).Consumed)
		assert.True(t, keys.HasKey(7))
	})

	t.Run("score and goal", func(t *testing.T) {
		score := PickupData{Kind: PickupScore, Amount: 50}
		assert.Equal(t, 50, score.Collect(target(0), &keys, 0).Score)

		goal := PickupData{Kind: PickupGoal}
		assert.True(t, goal.Collect(target(0), &keys, 0).LevelCleared)
	})

	t.Run("extra life", func(t *testing.T) {
		h := target(0)
		h.UseLives, h.Lives, h.MaxLives = true, 1, 3
		p := PickupData{Kind: PickupExtraLife, Amount: 1}
		assert.True(t, p.Collect(h, &keys, 0).Consumed)
		assert.Equal(t, 2, h.Lives)
	})
}

func TestParsePickupKind(t *testing.T) {
	for _, name := range []string{"health", "full_heal", "key", "score", "goal", "extra_life"} {
		k, ok := ParsePickupKind(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, k.String())
	}
	_, ok := ParsePickupKind("coin")
	assert.False(t, ok)
}

func TestContacts_Refresh(t *testing.T) {
	w := donburi.NewWorld()
	a, b := w.Create(Checkpoint), w.Create(Checkpoint)

	var c Contacts
	assert.Equal(t, []donburi.Entity{a}, c.Refresh([]donburi.Entity{a}))
	assert.Empty(t, c.Refresh([]donburi.Entity{a}))
	assert.Equal(t, []donburi.Entity{b}, c.Refresh([]donburi.Entity{a, b}))
	assert.True(t, c.Has(b))

	c.Refresh(nil)
	assert.False(t, c.Has(a))
	assert.Equal(t, []donburi.Entity{a}, c.Refresh([]donburi.Entity{a}))
}

func TestCheckpointTracker_Switch(t *testing.T) {
	w := donburi.NewWorld()
	first, second := w.Create(Checkpoint), w.Create(Checkpoint)

	var tracker CheckpointTrackerData
	_, hadPrev, changed := tracker.Switch(first)
	assert.False(t, hadPrev)
	assert.True(t, changed)

	_, _, changed = tracker.Switch(first)
	assert.False(t, changed)

	prev, hadPrev, changed := tracker.Switch(second)
	assert.True(t, hadPrev)
	assert.True(t, changed)
	assert.Equal(t, first, prev)
}

func TestHealth_SetRespawnPoint(t *testing.T) {
	h := target(0)
	h.SetRespawnPoint(gamemath.V2(3, 4))
	assert.Equal(t, gamemath.V2(3, 4), h.RespawnPosition)
}
