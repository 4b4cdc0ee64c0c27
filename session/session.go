// Package session owns one running level: the ECS world, its systems in tick
// order, and the singletons shared by them.
package session

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/automoto/hopper/systems"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Session struct {
	ecs   *ecs.ECS
	level *leveldata.Level
}

// New builds a session for level. source may be nil, in which case the
// player never moves on its own.
func New(level *leveldata.Level, source components.InputSource) *Session {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateHealth)
	ecs.AddSystem(systems.UpdateWaypoints)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateGroundProbes)
	ecs.AddSystem(systems.UpdateLasers)
	ecs.AddSystem(systems.UpdateStomps)
	ecs.AddSystem(systems.UpdateDamage)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateDoors)
	ecs.AddSystem(systems.UpdateCheckpoints)
	ecs.AddSystem(systems.UpdateDeadZones)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateRemovals)
	ecs.AddSystem(systems.ProcessEvents)

	factory.CreateSession(ecs, level, source)
	factory.CreateCamera(ecs)
	factory.CreateLevel(ecs, level)

	return &Session{ecs: ecs, level: level}
}

// Tick advances the simulation by dt seconds, capped at cfg.Sim.MaxDelta.
func (s *Session) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if cfg.Sim.MaxDelta > 0 && dt > cfg.Sim.MaxDelta {
		dt = cfg.Sim.MaxDelta
	}
	if e, ok := components.Clock.First(s.ecs.World); ok {
		components.Clock.Get(e).Advance(dt)
	}
	s.ecs.Update()
}

func (s *Session) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Session) World() donburi.World {
	return s.ecs.World
}

func (s *Session) Level() *leveldata.Level {
	return s.level
}

func (s *Session) Now() float64 {
	if e, ok := components.Clock.First(s.ecs.World); ok {
		return components.Clock.Get(e).Now
	}
	return 0
}

// Player returns the player entry while it exists.
func (s *Session) Player() (*donburi.Entry, bool) {
	return tags.Player.First(s.ecs.World)
}

func (s *Session) KeyRing() *components.KeyRingData {
	if e, ok := components.KeyRing.First(s.ecs.World); ok {
		return components.KeyRing.Get(e)
	}
	return nil
}

// GameOver reports whether the player is gone or dead with no lives left.
func (s *Session) GameOver() bool {
	player, ok := s.Player()
	if !ok {
		return true
	}
	health := components.Health.Get(player)
	return !health.Alive() && (!health.UseLives || health.Lives <= 0)
}

func (s *Session) LevelCleared() bool {
	if e, ok := components.Level.First(s.ecs.World); ok {
		return components.Level.Get(e).Cleared
	}
	return false
}

// RestoreCheckpoint resumes a saved run at the checkpoint with the given id.
func (s *Session) RestoreCheckpoint(id int) bool {
	return systems.RestoreCheckpoint(s.ecs, id)
}

// ApplyConfig re-reads player tuning after a config reload.
func (s *Session) ApplyConfig() {
	systems.ApplyPlayerConfig(s.ecs)
}

// Snapshot is a read-only view of the player for presentation and logging.
type Snapshot struct {
	Tick     uint64
	Now      float64
	Position gamemath.Vec3
	State    cfg.PlayerState
	Facing   cfg.Facing
	Grounded bool
	Health   int
	Lives    int
	Keys     []int
	Camera   gamemath.Vec3
}

func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	if e, ok := components.Clock.First(s.ecs.World); ok {
		clock := components.Clock.Get(e)
		snap.Tick, snap.Now = clock.Tick, clock.Now
	}
	if keys := s.KeyRing(); keys != nil {
		snap.Keys = keys.Keys()
	}
	if e, ok := components.Camera.First(s.ecs.World); ok {
		pos := components.Camera.Get(e).Position
		snap.Camera = gamemath.V2(pos.X, pos.Y)
	}
	player, ok := s.Player()
	if !ok {
		snap.State = cfg.PlayerDead
		return snap
	}
	p := components.Player.Get(player)
	health := components.Health.Get(player)
	snap.Position = components.Object.Get(player).Position()
	snap.State = p.State
	snap.Facing = p.Facing
	snap.Grounded = components.GroundProbe.Get(player).Grounded
	snap.Health = health.Current
	snap.Lives = health.Lives
	return snap
}
