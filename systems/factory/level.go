package factory

import (
	"log"

	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin pads the collision space so bodies falling just past the map
// edge still reach a dead zone.
const spaceMargin = 64

// CreateSession spawns the singleton holding the clock, key ring,
// checkpoint tracker, level and input source.
func CreateSession(ecs *ecs.ECS, level *leveldata.Level, source components.InputSource) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.KeyRing.SetValue(session, components.NewKeyRing())
	components.Level.SetValue(session, components.LevelData{Level: level})
	components.Input.SetValue(session, components.InputSourceData{Source: source})
	if source == nil {
		log.Printf("Warning: no input source configured, player input will read as zero")
	}
	return session
}

// CreateLevel builds the space and every object in level. It returns the
// player entry.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	cell := cfg.Physics.CellSize
	CreateSpace(ecs, level.Width+spaceMargin, level.Height+spaceMargin, cell, cell)

	for _, r := range level.Solids {
		CreateSolid(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Platforms {
		CreatePlatform(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, mp := range level.MovingPlatforms {
		points := level.PathPoints(mp.Path)
		if mp.Path != "" && points == nil {
			log.Printf("Warning: moving platform references unknown path %q", mp.Path)
		}
		CreateMovingPlatform(ecs, mp.X, mp.Y, mp.W, mp.H, MovingPlatformOptions{
			Path:      points,
			MoveSpeed: mp.Speed,
			WaitTime:  mp.Wait,
			OneWay:    mp.OneWay,
		})
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, hz := range level.Hazards {
		CreateHazard(ecs, hz.X, hz.Y, hz.W, hz.H, components.DamageData{
			TeamID:             hz.TeamID,
			Amount:             hz.Damage,
			DestroyAfterDamage: hz.DestroyAfterDamage,
			OnTriggerEnter:     !hz.Stay,
			OnTriggerStay:      hz.Stay,
		})
	}
	for _, d := range level.Doors {
		CreateDoor(ecs, d.X, d.Y, d.W, d.H, d.ID)
	}
	for _, c := range level.Checkpoints {
		CreateCheckpoint(ecs, c.X, c.Y, c.W, c.H, c.ID)
	}
	for _, p := range level.Pickups {
		kind, ok := components.ParsePickupKind(p.Kind)
		if !ok {
			log.Printf("Warning: skipping pickup with unknown kind %q", p.Kind)
			continue
		}
		CreatePickup(ecs, p.X, p.Y, p.W, p.H, components.PickupData{
			Kind:   kind,
			Amount: p.Amount,
			KeyID:  p.KeyID,
		})
	}
	for _, e := range level.Enemies {
		switch components.ParseEnemyKind(e.Kind) {
		case components.EnemyFlying:
			CreateFlyingEnemy(ecs, e.X, e.Y, FlyingEnemyOptions{
				Path:      level.PathPoints(e.Path),
				MoveSpeed: e.Speed,
				WaitTime:  e.Wait,
			})
		default:
			CreateWalkingEnemy(ecs, e.X, e.Y, WalkingEnemyOptions{
				Direction:  cfg.ParseWalkDirection(e.Direction),
				TurnAtEdge: e.TurnAtEdge,
				MoveSpeed:  e.Speed,
			})
		}
	}

	spawn := level.PlayerSpawn
	if !level.HasPlayerSpawn {
		log.Printf("Warning: level %s has no PlayerSpawn, using origin", level.Name)
		spawn = gamemath.Vec3{}
	}
	return CreatePlayer(ecs, spawn.X, spawn.Y)
}
