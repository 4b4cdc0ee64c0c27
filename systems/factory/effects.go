package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEffect spawns an effect that fades out over the configured lifetime.
func CreateEffect(ecs *ecs.ECS, kind cfg.EffectKind, pos gamemath.Vec3) *donburi.Entry {
	effect := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(effect, components.EffectData{
		Kind:     kind,
		Position: pos,
		Tween:    gween.New(1, 0, float32(cfg.Effects.Lifetime), ease.OutQuad),
		Alpha:    1,
	})
	return effect
}
