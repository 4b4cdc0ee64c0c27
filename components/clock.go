package components

import "github.com/yohamta/donburi"

// ClockData is the session clock. All deadlines in the simulation are
// expressed against Now.
type ClockData struct {
	Now   float64 // seconds since the session started
	Delta float64 // seconds covered by the current tick
	Tick  uint64
}

// Advance moves the clock forward by dt.
func (c *ClockData) Advance(dt float64) {
	c.Delta = dt
	c.Now += dt
	c.Tick++
}

var Clock = donburi.NewComponentType[ClockData]()
