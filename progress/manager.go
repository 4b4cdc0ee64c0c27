// Package progress listens to the simulation's progression notifications and
// keeps the player's score, high score and last checkpoint, persisting them
// between runs.
package progress

import (
	"encoding/json"
	"log"

	"github.com/automoto/hopper/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const itemKey = "progress"

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	HighScore     int    `json:"highScore"`
	Level         string `json:"level"`
	Checkpoint    int    `json:"checkpoint"`
	HasCheckpoint bool   `json:"hasCheckpoint"`
	LevelsCleared int    `json:"levelsCleared"`
}

// CheckpointRestorer is a running session that can resume at a checkpoint.
type CheckpointRestorer interface {
	RestoreCheckpoint(id int) bool
}

// Manager tracks one run. A Manager without a store keeps everything in
// memory.
type Manager struct {
	Score    int
	Saved    SavedProgress
	GameOver bool
	Cleared  bool
	// UIUpdates counts presentation refresh notifications.
	UIUpdates int

	level string
	store *gdata.Manager
}

// NewManager opens the gdata store for appName and loads saved progress.
// An empty appName or a store that cannot be opened leaves the manager
// in-memory only.
func NewManager(appName, level string) *Manager {
	m := &Manager{level: level}
	if appName == "" {
		return m
	}
	store, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return m
	}
	m.store = store
	m.load()
	return m
}

// Subscribe registers the manager's handlers on w.
func (m *Manager) Subscribe(w donburi.World) {
	components.ScoreEvent.Subscribe(w, m.onScore)
	components.UIEvent.Subscribe(w, m.onUI)
	components.GameOverEvent.Subscribe(w, m.onGameOver)
	components.LevelClearedEvent.Subscribe(w, m.onLevelCleared)
	components.CheckpointEvent.Subscribe(w, m.onCheckpoint)
}

// Reset starts a new run, keeping the high score.
func (m *Manager) Reset() {
	m.Score = 0
	m.GameOver = false
	m.Cleared = false
	m.UIUpdates = 0
}

func (m *Manager) HighScore() int {
	return m.Saved.HighScore
}

func (m *Manager) onScore(w donburi.World, e components.ScoreEventData) {
	m.Score += e.Amount
	if m.Score > m.Saved.HighScore {
		m.Saved.HighScore = m.Score
	}
}

func (m *Manager) onUI(w donburi.World, e components.UIEventData) {
	m.UIUpdates++
}

func (m *Manager) onGameOver(w donburi.World, e components.GameOverEventData) {
	if m.GameOver {
		return
	}
	m.GameOver = true
	m.clearCheckpoint()
	m.save()
}

func (m *Manager) onLevelCleared(w donburi.World, e components.LevelClearedEventData) {
	if m.Cleared {
		return
	}
	m.Cleared = true
	m.Saved.LevelsCleared++
	m.clearCheckpoint()
	m.save()
}

func (m *Manager) onCheckpoint(w donburi.World, e components.CheckpointEventData) {
	m.Saved.Level = m.level
	m.Saved.Checkpoint = e.ID
	m.Saved.HasCheckpoint = true
	m.save()
}

// SavedCheckpoint returns the checkpoint a previous run of this level
// reached, if that run neither finished nor ended in game over.
func (m *Manager) SavedCheckpoint() (int, bool) {
	if !m.Saved.HasCheckpoint || m.Saved.Level != m.level {
		return 0, false
	}
	return m.Saved.Checkpoint, true
}

// Resume puts s back at the saved checkpoint, if there is one.
func (m *Manager) Resume(s CheckpointRestorer) bool {
	id, ok := m.SavedCheckpoint()
	if !ok || !s.RestoreCheckpoint(id) {
		return false
	}
	log.Printf("Resuming %s from checkpoint %d", m.level, id)
	return true
}

func (m *Manager) clearCheckpoint() {
	m.Saved.Checkpoint = 0
	m.Saved.HasCheckpoint = false
}

func (m *Manager) load() {
	data, err := m.store.LoadItem(itemKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return
	}
	if data == nil {
		// Nothing saved yet
		return
	}
	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return
	}
	m.Saved = saved
}

func (m *Manager) save() {
	if m.store == nil {
		return
	}
	data, err := json.Marshal(m.Saved)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := m.store.SaveItem(itemKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
