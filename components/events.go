package components

import (
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/yohamta/donburi/features/events"
)

// Notifications for progression and presentation sinks. The simulation only
// publishes them; nothing in the tick reads them back.

type ScoreEventData struct {
	Amount int
}

type UIEventData struct{}

type GameOverEventData struct{}

type LevelClearedEventData struct{}

type EffectEventData struct {
	Kind     config.EffectKind
	Position gamemath.Vec3
}

type CheckpointEventData struct {
	ID    int
	Spawn gamemath.Vec3
}

var (
	ScoreEvent        = events.NewEventType[ScoreEventData]()
	UIEvent           = events.NewEventType[UIEventData]()
	GameOverEvent     = events.NewEventType[GameOverEventData]()
	LevelClearedEvent = events.NewEventType[LevelClearedEventData]()
	EffectEvent       = events.NewEventType[EffectEventData]()
	CheckpointEvent   = events.NewEventType[CheckpointEventData]()
)
