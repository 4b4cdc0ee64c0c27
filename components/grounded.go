package components

import (
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// surfaceTolerance absorbs float error when a body rests exactly on a surface.
const surfaceTolerance = 0.01

// GroundProbeData is a small collision box attached to an owner at a fixed
// offset. It reports whether it overlaps anything carrying one of Tags.
type GroundProbeData struct {
	Probe   *resolv.Object
	OffsetX float64
	OffsetY float64
	Tags    []string

	// LandingEffect asks the probe system to spawn a landing effect on
	// every false to true transition.
	LandingEffect bool

	// SurfaceOnly ignores objects the probe's top edge is already inside,
	// so feet passing up through a platform do not count as standing on it.
	SurfaceOnly bool

	Grounded          bool
	GroundedLastCheck bool
}

// NewGroundProbe creates a probe object and adds it to space. The probe also
// carries objectTags so other triggers can find it.
func NewGroundProbe(space *resolv.Space, owner *resolv.Object, offsetX, offsetY, w, h float64, layers []string, objectTags ...string) *GroundProbeData {
	obj := resolv.NewObject(owner.X+offsetX, owner.Y+offsetY, w, h, objectTags...)
	obj.Data = owner.Data
	if space != nil {
		space.Add(obj)
	}
	return &GroundProbeData{
		Probe:   obj,
		OffsetX: offsetX,
		OffsetY: offsetY,
		Tags:    append([]string(nil), layers...),
	}
}

// Follow places the probe relative to its owner's top-left corner.
func (g *GroundProbeData) Follow(x, y float64) {
	if g.Probe == nil {
		return
	}
	g.Probe.X = x + g.OffsetX
	g.Probe.Y = y + g.OffsetY
	g.Probe.Update()
}

// CheckGrounded queries the space and reports the current state plus
// whether this check is the first grounded one after being airborne.
// Layers in ignore are skipped for this check.
func (g *GroundProbeData) CheckGrounded(ignore ...string) (grounded, landed bool) {
	grounded = g.overlapsGround(ignore)
	landed = grounded && !g.GroundedLastCheck
	g.GroundedLastCheck = grounded
	g.Grounded = grounded
	return grounded, landed
}

func (g *GroundProbeData) overlapsGround(ignore []string) bool {
	if g.Probe == nil || g.Probe.Space == nil {
		return false
	}
	layers := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		if !containsTag(ignore, t) {
			layers = append(layers, t)
		}
	}
	if len(layers) == 0 {
		return false
	}
	check := g.Probe.Check(0, 0, layers...)
	if check == nil {
		return false
	}
	p := g.Probe
	for _, o := range check.ObjectsByTags(layers...) {
		if g.SurfaceOnly && o.Y < p.Y-surfaceTolerance {
			continue
		}
		if gamemath.Overlaps(p.X, p.Y, p.W, p.H, o.X, o.Y, o.W, o.H, 0) {
			return true
		}
	}
	return false
}

// Remove takes the probe out of its space.
func (g *GroundProbeData) Remove() {
	if g.Probe != nil && g.Probe.Space != nil {
		g.Probe.Space.Remove(g.Probe)
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

var GroundProbe = donburi.NewComponentType[GroundProbeData]()
