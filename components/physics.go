package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64 // units per second
	SpeedY       float64 // units per second, negative is up
	Gravity      float64
	MaxFallSpeed float64

	// IgnoreTags are collision tags the body currently passes through.
	IgnoreTags []string

	// OnGround is set by the collision pass when downward movement was
	// stopped this tick.
	OnGround bool
}

// Ascending reports whether the body is moving upwards.
func (p *PhysicsData) Ascending() bool {
	return p.SpeedY < 0
}

// Ignores reports whether tag is in the body's pass-through set.
func (p *PhysicsData) Ignores(tag string) bool {
	for _, t := range p.IgnoreTags {
		if t == tag {
			return true
		}
	}
	return false
}

// BlockingTags filters candidates down to the tags not currently ignored.
func (p *PhysicsData) BlockingTags(candidates ...string) []string {
	out := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if !p.Ignores(t) {
			out = append(out, t)
		}
	}
	return out
}

var Physics = donburi.NewComponentType[PhysicsData]()
