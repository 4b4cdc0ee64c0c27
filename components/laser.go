package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LaserData is a player projectile. It flies in a straight line and expires
// when its lifetime tween finishes.
type LaserData struct {
	VelocityX float64 // units per second, sign is the direction
	Lifetime  *gween.Tween
}

// Advance returns the horizontal step for dt and whether the laser has
// outlived its tween.
func (l *LaserData) Advance(dt float64) (dx float64, expired bool) {
	if l.Lifetime == nil {
		return 0, true
	}
	_, expired = l.Lifetime.Update(float32(dt))
	return l.VelocityX * dt, expired
}

var Laser = donburi.NewComponentType[LaserData]()
