package components

import (
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the collision space. Z is carried for
// waypoint paths authored in 3D; the space itself is planar.
type ObjectData struct {
	*resolv.Object
	Z float64
}

// Position returns the top-left corner of the object.
func (o *ObjectData) Position() gamemath.Vec3 {
	return gamemath.Vec3{X: o.X, Y: o.Y, Z: o.Z}
}

// SetPosition moves the object and refreshes its cells in the space.
func (o *ObjectData) SetPosition(p gamemath.Vec3) {
	o.X = p.X
	o.Y = p.Y
	o.Z = p.Z
	o.Update()
}

// Translate moves the object by a delta.
func (o *ObjectData) Translate(d gamemath.Vec3) {
	o.SetPosition(o.Position().Add(d))
}

// Center returns the middle of the object's bounding box.
func (o *ObjectData) Center() gamemath.Vec3 {
	return gamemath.Vec3{X: o.X + o.W/2, Y: o.Y + o.H/2, Z: o.Z}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every body lives in.
var Space = donburi.NewComponentType[resolv.Space]()
