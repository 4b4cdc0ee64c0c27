package components

import (
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a short-lived visual or audio cue. It fades from 1 to 0
// over its tween and is removed once the tween finishes.
type EffectData struct {
	Kind     config.EffectKind
	Position gamemath.Vec3
	Tween    *gween.Tween
	Alpha    float32
}

var Effect = donburi.NewComponentType[EffectData]()

// EffectRequest is an effect waiting to be spawned at the end of the tick.
type EffectRequest struct {
	Kind     config.EffectKind
	Position gamemath.Vec3
}

// PendingData collects structural changes that systems request while
// iterating, applied once per tick.
type PendingData struct {
	Effects  []EffectRequest
	Removals []donburi.Entity
}

func (p *PendingData) QueueEffect(kind config.EffectKind, pos gamemath.Vec3) {
	p.Effects = append(p.Effects, EffectRequest{Kind: kind, Position: pos})
}

func (p *PendingData) QueueRemoval(e donburi.Entity) {
	for _, queued := range p.Removals {
		if queued == e {
			return
		}
	}
	p.Removals = append(p.Removals, e)
}

var Pending = donburi.NewComponentType[PendingData]()
