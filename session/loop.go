package session

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a Session from a wall-clock ticker.
type GameLoop struct {
	session  *Session
	tickRate int
	maxTicks int
	onTick   func(*Session)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop running tickRate ticks per second. maxTicks <= 0
// runs until Stop is called or the session ends.
func NewGameLoop(s *Session, tickRate, maxTicks int, onTick func(*Session)) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  s,
		tickRate: tickRate,
		maxTicks: maxTicks,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	ticks := 0
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			ticks++
			if g.done(ticks) {
				log.Printf("Game loop finished after %d ticks", ticks)
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() {
	g.session.Tick(1 / float64(g.tickRate))
	if g.onTick != nil {
		g.onTick(g.session)
	}
}

func (g *GameLoop) done(ticks int) bool {
	if g.maxTicks > 0 && ticks >= g.maxTicks {
		return true
	}
	return g.session.GameOver() || g.session.LevelCleared()
}

// RunFixed advances s by ticks steps of dt without waiting on a clock.
func RunFixed(s *Session, ticks int, dt float64, onTick func(*Session)) int {
	for i := 0; i < ticks; i++ {
		s.Tick(dt)
		if onTick != nil {
			onTick(s)
		}
		if s.GameOver() || s.LevelCleared() {
			return i + 1
		}
	}
	return ticks
}
