package progress

import (
	"testing"

	"github.com/automoto/hopper/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func deliver(w donburi.World) {
	components.ScoreEvent.ProcessEvents(w)
	components.UIEvent.ProcessEvents(w)
	components.CheckpointEvent.ProcessEvents(w)
	components.LevelClearedEvent.ProcessEvents(w)
	components.GameOverEvent.ProcessEvents(w)
}

func TestManager_ScoreAndHighScore(t *testing.T) {
	w := donburi.NewWorld()
	m := NewManager("", "level1.tmx")
	m.Subscribe(w)

	components.ScoreEvent.Publish(w, components.ScoreEventData{Amount: 50})
	components.ScoreEvent.Publish(w, components.ScoreEventData{Amount: 25})
	components.UIEvent.Publish(w, components.UIEventData{})
	deliver(w)

	assert.Equal(t, 75, m.Score)
	assert.Equal(t, 75, m.HighScore())
	assert.Equal(t, 1, m.UIUpdates)

	m.Reset()
	components.ScoreEvent.Publish(w, components.ScoreEventData{Amount: 10})
	deliver(w)

	assert.Equal(t, 10, m.Score)
	assert.Equal(t, 75, m.HighScore(), "high score survives a reset")
}

func TestManager_TerminalEvents(t *testing.T) {
	w := donburi.NewWorld()
	m := NewManager("", "level1.tmx")
	m.Subscribe(w)

	components.CheckpointEvent.Publish(w, components.CheckpointEventData{ID: 3})
	components.LevelClearedEvent.Publish(w, components.LevelClearedEventData{})
	components.LevelClearedEvent.Publish(w, components.LevelClearedEventData{})
	components.GameOverEvent.Publish(w, components.GameOverEventData{})
	deliver(w)

	assert.False(t, m.Saved.HasCheckpoint, "a cleared level starts over next time")
	assert.Equal(t, "level1.tmx", m.Saved.Level)
	assert.True(t, m.Cleared)
	assert.Equal(t, 1, m.Saved.LevelsCleared)
	assert.True(t, m.GameOver)
}

type restorer struct {
	known    map[int]bool
	restored []int
}

func (r *restorer) RestoreCheckpoint(id int) bool {
	if !r.known[id] {
		return false
	}
	r.restored = append(r.restored, id)
	return true
}

func TestManager_ResumeFromCheckpoint(t *testing.T) {
	w := donburi.NewWorld()
	m := NewManager("", "level1.tmx")
	m.Subscribe(w)
	r := &restorer{known: map[int]bool{3: true}}

	assert.False(t, m.Resume(r), "nothing saved yet")

	components.CheckpointEvent.Publish(w, components.CheckpointEventData{ID: 3})
	deliver(w)
	id, ok := m.SavedCheckpoint()
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	assert.True(t, m.Resume(r))
	assert.Equal(t, []int{3}, r.restored)

	other := &Manager{Saved: m.Saved, level: "level2.tmx"}
	_, ok = other.SavedCheckpoint()
	assert.False(t, ok, "checkpoints belong to their level")

	components.CheckpointEvent.Publish(w, components.CheckpointEventData{ID: 9})
	deliver(w)
	assert.False(t, m.Resume(r), "unknown checkpoint in this level")

	components.GameOverEvent.Publish(w, components.GameOverEventData{})
	deliver(w)
	_, ok = m.SavedCheckpoint()
	assert.False(t, ok, "game over forgets the checkpoint")
}
