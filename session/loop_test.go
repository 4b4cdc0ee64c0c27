package session_test

import (
	"testing"
	"time"

	"github.com/automoto/hopper/session"
	"github.com/stretchr/testify/assert"
)

// runAsync runs the loop and reports on the returned channel once Run exits.
func runAsync(loop *session.GameLoop) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	return done
}

func TestGameLoop_StopsAfterMaxTicks(t *testing.T) {
	s := newSession(t, flatLevel(), "")
	ticks := 0
	loop := session.NewGameLoop(s, 1000, 5, func(*session.Session) { ticks++ })

	select {
	case <-runAsync(loop):
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not finish")
	}
	assert.Equal(t, 5, ticks)
	assert.Equal(t, uint64(5), s.Snapshot().Tick)
}

func TestGameLoop_StopTwice(t *testing.T) {
	s := newSession(t, flatLevel(), "")
	loop := session.NewGameLoop(s, 1000, 0, nil)
	done := runAsync(loop)

	assert.NotPanics(t, func() {
		loop.Stop()
		loop.Stop()
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}
