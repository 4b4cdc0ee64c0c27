package session_test

import (
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/input"
	"github.com/automoto/hopper/levels"
	"github.com/automoto/hopper/progress"
	"github.com/automoto/hopper/session"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/automoto/hopper/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const dt = 1.0 / 60

// flatLevel is a 640x240 room with a floor at y=200 and the player resting
// on it at x=32.
func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:           "test",
		Width:          640,
		Height:         240,
		PlayerSpawn:    gamemath.V2(32, 172),
		HasPlayerSpawn: true,
		Solids:         []leveldata.Rect{{X: 0, Y: 200, W: 640, H: 40}},
	}
}

func newSession(t *testing.T, level *leveldata.Level, script string) *session.Session {
	t.Helper()
	t.Cleanup(cfg.Reset)
	src, err := input.ParseScript(script)
	require.NoError(t, err)
	return session.New(level, src)
}

func run(s *session.Session, ticks int) {
	session.RunFixed(s, ticks, dt, nil)
}

func player(t *testing.T, s *session.Session) *donburi.Entry {
	t.Helper()
	e, ok := s.Player()
	require.True(t, ok, "player exists")
	return e
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestSession_FallsAndLandsIdle(t *testing.T) {
	level := flatLevel()
	level.PlayerSpawn = gamemath.V2(32, 100)
	s := newSession(t, level, "")

	run(s, 10)
	assert.Equal(t, cfg.PlayerFall, s.Snapshot().State)

	run(s, 110)
	snap := s.Snapshot()
	assert.Equal(t, cfg.PlayerIdle, snap.State)
	assert.True(t, snap.Grounded)
	assert.InDelta(t, 172, snap.Position.Y, 1e-6)
	assert.Equal(t, uint64(120), snap.Tick)
}

func TestSession_WalksRight(t *testing.T) {
	s := newSession(t, flatLevel(), "right:30,idle:2")

	run(s, 30)
	snap := s.Snapshot()
	assert.Equal(t, cfg.PlayerWalk, snap.State)
	assert.Equal(t, cfg.FacingRight, snap.Facing)
	assert.Greater(t, snap.Position.X, 32.0+50)

	run(s, 2)
	assert.Equal(t, cfg.PlayerIdle, s.Snapshot().State)
}

func TestSession_JumpAndLand(t *testing.T) {
	s := newSession(t, flatLevel(), "idle:5,jump,idle")

	run(s, 8)
	snap := s.Snapshot()
	assert.Equal(t, cfg.PlayerJump, snap.State)
	assert.Less(t, snap.Position.Y, 172.0)
	assert.Equal(t, 1, components.Player.Get(player(t, s)).JumpsUsed)

	run(s, 30)
	assert.Equal(t, cfg.PlayerFall, s.Snapshot().State)

	run(s, 60)
	snap = s.Snapshot()
	assert.Equal(t, cfg.PlayerIdle, snap.State)
	assert.InDelta(t, 172, snap.Position.Y, 1e-6)
	assert.Equal(t, 0, components.Player.Get(player(t, s)).JumpsUsed)
}

func TestSession_StompBouncesAndKillsEnemy(t *testing.T) {
	level := flatLevel()
	level.PlayerSpawn = gamemath.V2(100, 148)
	level.Enemies = []leveldata.EnemySpawn{{X: 96, Y: 184, Kind: "walking"}}
	s := newSession(t, level, "")
	require.Equal(t, 1, count(s.World(), components.Enemy))

	run(s, 8)
	assert.Equal(t, 0, count(s.World(), components.Enemy))

	p := player(t, s)
	assert.Equal(t, 3, components.Health.Get(p).Current, "stomping does not hurt")
	assert.Equal(t, cfg.PlayerJump, components.Player.Get(p).State)
	assert.Less(t, components.Object.Get(p).Y, 148.0)
}

func TestSession_EnemyContactDamage(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{X: 60, Y: 184, Kind: "walking", Direction: "left"}}
	s := newSession(t, level, "")

	run(s, 60)
	health := components.Health.Get(player(t, s))
	assert.Equal(t, 2, health.Current, "one hit, then invincible")
	assert.True(t, health.Invincible)
}

func TestSession_KeyOpensDoor(t *testing.T) {
	level := flatLevel()
	level.Pickups = []leveldata.PickupSpawn{{Rect: leveldata.Rect{X: 100, Y: 180, W: 16, H: 16}, Kind: "key", KeyID: 5}}
	level.Doors = []leveldata.DoorSpawn{{Rect: leveldata.Rect{X: 200, Y: 136, W: 16, H: 64}, ID: 5}}
	s := newSession(t, level, "right:240")

	run(s, 240)
	assert.True(t, s.KeyRing().HasKey(5))
	assert.Equal(t, 0, count(s.World(), components.Pickup))

	var door *components.DoorData
	components.Door.Each(s.World(), func(e *donburi.Entry) { door = components.Door.Get(e) })
	require.NotNil(t, door)
	assert.True(t, door.IsOpen)
	assert.Greater(t, s.Snapshot().Position.X, 216.0)
}

func TestSession_LockedDoorBlocks(t *testing.T) {
	level := flatLevel()
	level.Doors = []leveldata.DoorSpawn{{Rect: leveldata.Rect{X: 200, Y: 136, W: 16, H: 64}, ID: 5}}
	s := newSession(t, level, "right:240")

	run(s, 240)
	assert.InDelta(t, 200-cfg.Player.CollisionWidth, s.Snapshot().Position.X, 1e-6)
	components.Door.Each(s.World(), func(e *donburi.Entry) {
		assert.False(t, components.Door.Get(e).IsOpen)
	})
}

func TestSession_CheckpointRespawn(t *testing.T) {
	level := flatLevel()
	level.Checkpoints = []leveldata.CheckpointSpawn{{Rect: leveldata.Rect{X: 100, Y: 152, W: 16, H: 48}, ID: 1}}
	level.Hazards = []leveldata.HazardSpawn{{Rect: leveldata.Rect{X: 200, Y: 192, W: 32, H: 8}, Damage: 5, TeamID: 1, Stay: true}}
	s := newSession(t, level, "right:100")

	tracker := progress.NewManager("", level.Name)
	tracker.Subscribe(s.World())

	run(s, 100)
	p := player(t, s)
	health := components.Health.Get(p)
	assert.False(t, health.Alive())
	assert.Equal(t, 2, health.Lives)
	assert.Equal(t, cfg.PlayerDead, s.Snapshot().State)
	assert.Equal(t, gamemath.V2(101, 172), health.RespawnPosition)
	assert.True(t, tracker.Saved.HasCheckpoint)
	assert.Equal(t, 1, tracker.Saved.Checkpoint)
	assert.False(t, s.GameOver())

	run(s, 200)
	snap := s.Snapshot()
	assert.Equal(t, 3, snap.Health)
	assert.Equal(t, cfg.PlayerIdle, snap.State)
	assert.InDelta(t, 101, snap.Position.X, 1e-6)
	assert.InDelta(t, 172, snap.Position.Y, 1e-6)
}

func TestSession_RestoreCheckpoint(t *testing.T) {
	level := flatLevel()
	level.Checkpoints = []leveldata.CheckpointSpawn{{Rect: leveldata.Rect{X: 300, Y: 152, W: 16, H: 48}, ID: 2}}
	s := newSession(t, level, "")

	var events int
	components.CheckpointEvent.Subscribe(s.World(), func(w donburi.World, e components.CheckpointEventData) {
		events++
	})

	assert.False(t, s.RestoreCheckpoint(7))
	require.True(t, s.RestoreCheckpoint(2))

	run(s, 5)
	snap := s.Snapshot()
	assert.InDelta(t, 301, snap.Position.X, 1e-6)
	assert.InDelta(t, 172, snap.Position.Y, 1e-6)
	assert.Equal(t, gamemath.V2(301, 172), components.Health.Get(player(t, s)).RespawnPosition)
	assert.Zero(t, events, "resuming is silent")

	components.Checkpoint.Each(s.World(), func(e *donburi.Entry) {
		assert.True(t, components.Checkpoint.Get(e).Active)
	})
}

func TestSession_GameOverInDeadZone(t *testing.T) {
	cfg.Player.Health.Lives = 1
	cfg.Player.Health.RespawnWaitTime = 0

	level := flatLevel()
	level.Solids = nil
	level.DeadZones = []leveldata.Rect{{X: 0, Y: 280, W: 640, H: 8}}
	s := newSession(t, level, "")

	tracker := progress.NewManager("", level.Name)
	tracker.Subscribe(s.World())

	ran := session.RunFixed(s, 600, dt, nil)
	assert.Less(t, ran, 600)
	assert.True(t, s.GameOver())
	assert.True(t, tracker.GameOver)
	_, ok := s.Player()
	assert.False(t, ok)
}

func TestSession_ScoreAndGoal(t *testing.T) {
	level := flatLevel()
	level.Pickups = []leveldata.PickupSpawn{
		{Rect: leveldata.Rect{X: 60, Y: 184, W: 16, H: 16}, Kind: "score", Amount: 50},
		{Rect: leveldata.Rect{X: 120, Y: 168, W: 16, H: 32}, Kind: "goal"},
	}
	s := newSession(t, level, "right:120")

	tracker := progress.NewManager("", level.Name)
	tracker.Subscribe(s.World())

	ran := session.RunFixed(s, 120, dt, nil)
	assert.Less(t, ran, 120)
	assert.True(t, s.LevelCleared())
	assert.True(t, tracker.Cleared)
	assert.Equal(t, 50, tracker.Score)
	assert.Equal(t, 50, tracker.HighScore())
}

func TestSession_MovingPlatformCarriesRider(t *testing.T) {
	level := flatLevel()
	level.PlayerSpawn = gamemath.V2(317, 122)
	level.Paths = map[string]leveldata.Path{
		"lift": {Name: "lift", Points: []gamemath.Vec3{gamemath.V2(300, 150), gamemath.V2(300, 100)}},
	}
	level.MovingPlatforms = []leveldata.MovingPlatformSpawn{{
		Rect:  leveldata.Rect{X: 300, Y: 150, W: 48, H: 8},
		Path:  "lift",
		Speed: 20,
		Wait:  0.5,
	}}
	s := newSession(t, level, "")

	run(s, 150)
	var platform *components.ObjectData
	tags.MovingPlatform.Each(s.World(), func(e *donburi.Entry) { platform = components.Object.Get(e) })
	require.NotNil(t, platform)
	assert.Less(t, platform.Y, 115.0)
	assert.Greater(t, platform.Y, 100.0)

	snap := s.Snapshot()
	assert.InDelta(t, platform.Y, snap.Position.Y+cfg.Player.CollisionHeight, 1)
	assert.True(t, snap.Grounded)
}

func TestSession_EffectsExpire(t *testing.T) {
	level := flatLevel()
	level.PlayerSpawn = gamemath.V2(32, 150)
	s := newSession(t, level, "")

	var landings int
	components.EffectEvent.Subscribe(s.World(), func(w donburi.World, e components.EffectEventData) {
		if e.Kind == cfg.EffectLanding {
			landings++
		}
	})

	run(s, 20)
	assert.Equal(t, 1, landings)
	assert.Equal(t, 1, count(s.World(), components.Effect))

	run(s, 60)
	assert.Equal(t, 0, count(s.World(), components.Effect))
}

func TestSession_LaserKillsEnemyAndIsConsumed(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{X: 100, Y: 184, Kind: "walking"}}
	s := newSession(t, level, "idle:2,shoot")

	run(s, 3)
	require.Equal(t, 1, count(s.World(), components.Laser))
	var laser *components.LaserData
	components.Laser.Each(s.World(), func(e *donburi.Entry) { laser = components.Laser.Get(e) })
	assert.Equal(t, cfg.Laser.Speed, laser.VelocityX)

	run(s, 60)
	assert.Equal(t, 0, count(s.World(), components.Enemy))
	assert.Equal(t, 0, count(s.World(), components.Laser))
	assert.Equal(t, 3, components.Health.Get(player(t, s)).Current)
}

func TestSession_LaserFacesLeftAndExpires(t *testing.T) {
	s := newSession(t, flatLevel(), "left,idle,shoot")

	run(s, 3)
	var obj *components.ObjectData
	var laser *components.LaserData
	components.Laser.Each(s.World(), func(e *donburi.Entry) {
		laser = components.Laser.Get(e)
		obj = components.Object.Get(e)
	})
	require.NotNil(t, laser)
	assert.Less(t, laser.VelocityX, 0.0)
	assert.Less(t, obj.X, s.Snapshot().Position.X)

	run(s, 170)
	assert.Equal(t, 1, count(s.World(), components.Laser))

	run(s, 30)
	assert.Equal(t, 0, count(s.World(), components.Laser))
}

func TestSession_ApplyConfig(t *testing.T) {
	s := newSession(t, flatLevel(), "")
	cfg.Player.JumpPower = 999
	s.ApplyConfig()
	assert.Equal(t, 999.0, components.Player.Get(player(t, s)).JumpPower)
}

func TestSession_NilInputSource(t *testing.T) {
	t.Cleanup(cfg.Reset)
	s := session.New(flatLevel(), nil)
	run(s, 30)
	snap := s.Snapshot()
	assert.Equal(t, cfg.PlayerIdle, snap.State)
	assert.InDelta(t, 32, snap.Position.X, 1e-9)
}

func TestSession_BundledLevel(t *testing.T) {
	level, err := leveldata.LoadLevel(levels.FS, levels.Default)
	require.NoError(t, err)
	s := newSession(t, level, "right:120,right+jump:20,right:240")

	ran := session.RunFixed(s, 380, dt, nil)
	assert.Equal(t, 380, ran)
	assert.False(t, s.GameOver())
	assert.Greater(t, s.Snapshot().Position.X, level.PlayerSpawn.X)
}
