package components

import "github.com/yohamta/donburi"

// PickupKind is the closed set of collectibles.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupFullHeal
	PickupKey
	PickupScore
	PickupGoal
	PickupExtraLife
)

var pickupKindNames = map[string]PickupKind{
	"health":     PickupHealth,
	"full_heal":  PickupFullHeal,
	"key":        PickupKey,
	"score":      PickupScore,
	"goal":       PickupGoal,
	"extra_life": PickupExtraLife,
}

// ParsePickupKind maps a level-file name to a kind.
func ParsePickupKind(s string) (PickupKind, bool) {
	k, ok := pickupKindNames[s]
	return k, ok
}

func (k PickupKind) String() string {
	for name, kind := range pickupKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

type PickupData struct {
	Kind   PickupKind
	Amount int // healing, score or lives depending on Kind
	KeyID  int

	Contacts Contacts
}

// PickupResult is the effect of touching a pickup.
type PickupResult struct {
	Consumed     bool
	Score        int
	LevelCleared bool
	Outcome      HealthOutcome
}

// Collect applies the pickup to the player that touched it. Health pickups
// stay in the world while the player is at full health.
func (p *PickupData) Collect(health *HealthData, keys *KeyRingData, now float64) PickupResult {
	if health == nil {
		return PickupResult{}
	}
	switch p.Kind {
	case PickupHealth:
		if health.Current >= health.Max {
			return PickupResult{}
		}
		return PickupResult{Consumed: true, Outcome: health.ReceiveHealing(p.Amount, now)}
	case PickupFullHeal:
		return PickupResult{Consumed: true, Outcome: health.ReceiveHealing(health.Max, now)}
	case PickupKey:
		if keys != nil {
			keys.AddKey(p.KeyID)
		}
		return PickupResult{Consumed: true}
	case PickupScore:
		return PickupResult{Consumed: true, Score: p.Amount}
	case PickupGoal:
		return PickupResult{Consumed: true, LevelCleared: true}
	case PickupExtraLife:
		return PickupResult{Consumed: true, Outcome: health.AddLives(p.Amount)}
	}
	return PickupResult{}
}

var Pickup = donburi.NewComponentType[PickupData]()
