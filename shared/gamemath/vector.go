// Package gamemath holds the small amount of vector and scalar math shared by
// the simulation. It has no dependencies on donburi, resolv or ebitengine.
package gamemath

import "math"

// normalizeEpsilon matches the threshold below which a direction is treated
// as zero length.
const normalizeEpsilon = 1e-5

// Vec3 is a point or direction in world space. Z is carried through waypoint
// motion but the collision world only uses X and Y.
type Vec3 struct {
	X, Y, Z float64
}

func V2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v is too short to have a direction.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < normalizeEpsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}
