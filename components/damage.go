package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DamageData turns an entity into a damage source. The trigger flags decide
// when the damage system calls ResolveDamage; the resolver itself ignores
// them.
type DamageData struct {
	TeamID             int
	Amount             int
	DestroyAfterDamage bool

	OnTriggerEnter bool // first tick of an overlap
	OnTriggerStay  bool // every tick of an overlap
	OnCollision    bool // first tick of touching

	Contacts Contacts
}

// DamageResult is what ResolveDamage did.
type DamageResult struct {
	Applied       bool
	ConsumeSource bool
	Outcome       HealthOutcome
}

// ResolveDamage applies source to target when they are on different teams.
// A source that destroys itself on damage is consumed even when the target
// was invincible.
func ResolveDamage(source *DamageData, target *HealthData, now float64) DamageResult {
	if source == nil || target == nil || source.TeamID == target.TeamID {
		return DamageResult{}
	}
	return DamageResult{
		Applied:       true,
		ConsumeSource: source.DestroyAfterDamage,
		Outcome:       target.TakeDamage(source.Amount, now),
	}
}

// HeadData is the stomp target on top of an enemy. Feet entering it damage
// the owner and bounce the stomper.
type HeadData struct {
	Object  *resolv.Object
	OffsetX float64
	OffsetY float64
	Damage  int

	Contacts Contacts
}

// Follow keeps the head on top of its owner.
func (h *HeadData) Follow(x, y float64) {
	if h.Object == nil {
		return
	}
	h.Object.X = x + h.OffsetX
	h.Object.Y = y + h.OffsetY
	h.Object.Update()
}

var Damage = donburi.NewComponentType[DamageData]()
var Head = donburi.NewComponentType[HeadData]()
