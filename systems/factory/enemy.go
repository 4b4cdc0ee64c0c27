package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// headHeight is the thickness of the stomp trigger on top of an enemy.
const headHeight = 4

// WalkingEnemyOptions overrides the configured defaults for one enemy.
type WalkingEnemyOptions struct {
	Direction  cfg.WalkDirection
	TurnAtEdge bool
	MoveSpeed  float64 // 0 uses cfg.Enemy.MoveSpeed
}

func CreateWalkingEnemy(ecs *ecs.ECS, x, y float64, opts WalkingEnemyOptions) *donburi.Entry {
	enemy := archetypes.WalkingEnemy.Spawn(ecs)
	obj, space := newEnemyBody(ecs, enemy, x, y)

	speed := opts.MoveSpeed
	if speed == 0 {
		speed = cfg.Enemy.MoveSpeed
	}

	w, h, pb := obj.W, obj.H, cfg.Enemy.ProbeSize
	walls := []string{tags.ResolvSolid}
	data := components.EnemyData{
		Kind:       components.EnemyWalking,
		MoveSpeed:  speed,
		Direction:  opts.Direction,
		TurnAtEdge: opts.TurnAtEdge,
		WallLeft:   components.NewGroundProbe(space, obj, -pb, 2, pb, h-4, walls, tags.ResolvProbe),
		WallRight:  components.NewGroundProbe(space, obj, w, 2, pb, h-4, walls, tags.ResolvProbe),
		EdgeLeft:   components.NewGroundProbe(space, obj, -pb, h, pb, pb, tags.GroundTags, tags.ResolvProbe),
		EdgeRight:  components.NewGroundProbe(space, obj, w, h, pb, pb, tags.GroundTags, tags.ResolvProbe),
	}
	if data.Direction == cfg.WalkNone {
		data.State = cfg.EnemyIdle
	} else {
		data.State = cfg.EnemyWalking
	}
	components.Enemy.SetValue(enemy, data)

	return enemy
}

// FlyingEnemyOptions overrides the configured defaults for one enemy.
type FlyingEnemyOptions struct {
	Path      []gamemath.Vec3
	MoveSpeed float64 // 0 uses cfg.Waypoint.MoveSpeed
	WaitTime  float64 // negative uses cfg.Waypoint.WaitTime
}

func CreateFlyingEnemy(ecs *ecs.ECS, x, y float64, opts FlyingEnemyOptions) *donburi.Entry {
	enemy := archetypes.FlyingEnemy.Spawn(ecs)
	newEnemyBody(ecs, enemy, x, y)

	speed, wait := waypointTuning(opts.MoveSpeed, opts.WaitTime)
	path := components.NewWaypointPath(opts.Path, gamemath.V2(x, y), speed, wait)
	components.Waypoint.SetValue(enemy, path)

	data := components.EnemyData{Kind: components.EnemyFlying}
	data.FollowPath(&path)
	components.Enemy.SetValue(enemy, data)

	return enemy
}

// newEnemyBody sets up everything walking and flying enemies share: the
// body, health, contact damage and the stomp target.
func newEnemyBody(ecs *ecs.ECS, enemy *donburi.Entry, x, y float64) (*resolv.Object, *resolv.Space) {
	w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Health.SetValue(enemy, components.NewHealth(cfg.Enemy.Health, gamemath.V2(x, y)))
	components.Damage.SetValue(enemy, components.DamageData{
		TeamID:        cfg.Enemy.Health.TeamID,
		Amount:        cfg.Enemy.ContactDamage,
		OnTriggerStay: true,
	})

	head := newBox(x+1, y-headHeight/2, w-2, headHeight, tags.ResolvHead)
	head.Data = enemy
	components.Head.SetValue(enemy, components.HeadData{
		Object:  head,
		OffsetX: 1,
		OffsetY: -headHeight / 2,
		Damage:  cfg.Enemy.HeadDamage,
	})

	space := addToSpace(ecs, obj)
	if space != nil {
		space.Add(head)
	}
	return obj, space
}

func waypointTuning(speed, wait float64) (float64, float64) {
	if speed == 0 {
		speed = cfg.Waypoint.MoveSpeed
	}
	if wait < 0 {
		wait = cfg.Waypoint.WaitTime
	}
	return speed, wait
}
