// Command sim runs a level headless with scripted input and logs what
// happens.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/input"
	"github.com/automoto/hopper/levels"
	"github.com/automoto/hopper/progress"
	"github.com/automoto/hopper/session"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/yohamta/donburi"
)

func main() {
	levelPath := flag.String("level", levels.Default, "Level file inside the bundled levels")
	ticks := flag.Int("ticks", 600, "Ticks to simulate (0 = until the run ends, realtime only)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = config tick rate)")
	configPath := flag.String("config", "", "YAML config overlay")
	script := flag.String("input", "right:120,right+jump:20,right:240", "Scripted input, e.g. right:30,jump,idle:10")
	realtime := flag.Bool("realtime", false, "Pace ticks with a wall-clock ticker")
	list := flag.Bool("list", false, "List bundled levels and exit")
	verbose := flag.Bool("v", false, "Log the player snapshot every second")
	appName := flag.String("save", "", "Save data application name (empty = don't persist)")
	flag.Parse()

	if *list {
		all, names, err := leveldata.LoadAllLevels(levels.FS, ".")
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		for _, name := range names {
			l := all[name]
			fmt.Printf("%s\t%dx%d\tenemies=%d pickups=%d doors=%d\n",
				l.Name, l.Width, l.Height, len(l.Enemies), len(l.Pickups), len(l.Doors))
		}
		return
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	rate := *tickRate
	if rate <= 0 {
		rate = config.C.TickRate
	}

	level, err := leveldata.LoadLevel(levels.FS, *levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	source, err := input.ParseScript(*script)
	if err != nil {
		log.Fatalf("Invalid input script: %v", err)
	}

	s := session.New(level, source)
	tracker := progress.NewManager(*appName, *levelPath)
	tracker.Subscribe(s.World())
	tracker.Resume(s)
	logEvents(s.World())

	onTick := func(s *session.Session) {
		snap := s.Snapshot()
		if *verbose && snap.Tick%uint64(rate) == 0 {
			log.Printf("t=%.2fs pos=(%.1f, %.1f) state=%s grounded=%v hp=%d lives=%d keys=%v",
				snap.Now, snap.Position.X, snap.Position.Y, snap.State, snap.Grounded,
				snap.Health, snap.Lives, snap.Keys)
		}
	}

	log.Printf("Simulating %q (%d ticks at %d/s)", level.Name, *ticks, rate)
	if *realtime {
		loop := session.NewGameLoop(s, rate, *ticks, onTick)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Stopping simulation...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		n := *ticks
		if n <= 0 {
			log.Fatal("-ticks must be positive without -realtime")
		}
		ran := session.RunFixed(s, n, 1/float64(rate), onTick)
		log.Printf("Ran %d ticks", ran)
	}

	snap := s.Snapshot()
	log.Printf("Final: pos=(%.1f, %.1f) state=%s hp=%d lives=%d score=%d best=%d cleared=%v over=%v",
		snap.Position.X, snap.Position.Y, snap.State, snap.Health, snap.Lives,
		tracker.Score, tracker.HighScore(), s.LevelCleared(), s.GameOver())
}

func logEvents(w donburi.World) {
	components.EffectEvent.Subscribe(w, func(w donburi.World, e components.EffectEventData) {
		log.Printf("effect %s at (%.1f, %.1f)", e.Kind, e.Position.X, e.Position.Y)
	})
	components.ScoreEvent.Subscribe(w, func(w donburi.World, e components.ScoreEventData) {
		log.Printf("score +%d", e.Amount)
	})
	components.CheckpointEvent.Subscribe(w, func(w donburi.World, e components.CheckpointEventData) {
		log.Printf("checkpoint %d activated", e.ID)
	})
	components.LevelClearedEvent.Subscribe(w, func(w donburi.World, e components.LevelClearedEventData) {
		log.Println("level cleared")
	})
	components.GameOverEvent.Subscribe(w, func(w donburi.World, e components.GameOverEventData) {
		log.Println("game over")
	})
}
