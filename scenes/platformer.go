package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/hopper/archetypes"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/fonts"
	"github.com/automoto/hopper/input"
	"github.com/automoto/hopper/levels"
	"github.com/automoto/hopper/progress"
	"github.com/automoto/hopper/session"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/automoto/hopper/systems"
	"github.com/automoto/hopper/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type PlatformerScene struct {
	sceneChanger SceneChanger
	opts         Options
	session      *session.Session
	progress     *progress.Manager
	watcher      *cfg.Watcher
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, opts Options) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadConfig()

	ps.session.Tick(1 / float64(ebiten.TPS()))

	switch {
	case ps.session.LevelCleared():
		ps.finish("LEVEL CLEAR")
	case ps.session.GameOver():
		ps.finish("GAME OVER")
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.session == nil {
		return
	}
	ps.session.ECS().Draw(screen)
	fonts.Draw(screen,
		fmt.Sprintf("Score %d  Best %d", ps.progress.Score, ps.progress.HighScore()),
		fonts.HUD, 4, 18, color.White)
}

func (ps *PlatformerScene) configure() {
	level, err := leveldata.LoadLevel(levels.FS, ps.opts.LevelPath)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ps.session = session.New(level, input.NewKeyboard())
	ps.progress = progress.NewManager(ps.opts.AppName, ps.opts.LevelPath)
	ps.progress.Subscribe(ps.session.World())
	ps.progress.Resume(ps.session)

	e := ps.session.ECS()
	if ps.opts.Debug {
		e.AddRenderer(archetypes.Default, systems.DrawDebug)
	}
	e.AddRenderer(archetypes.Default, systems.DrawHUD)

	if ps.opts.ConfigPath != "" {
		w, err := cfg.NewWatcher(ps.opts.ConfigPath)
		if err != nil {
			log.Printf("Warning: Could not watch config %s: %v", ps.opts.ConfigPath, err)
			return
		}
		ps.watcher = w
	}
}

// reloadConfig applies a changed config file between ticks.
func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil {
		return
	}
	select {
	case path := <-ps.watcher.Events:
		if err := cfg.LoadFile(path); err != nil {
			log.Printf("Warning: Could not reload config: %v", err)
			return
		}
		ps.session.ApplyConfig()
		log.Printf("Reloaded config from %s", path)
	case err := <-ps.watcher.Errors:
		log.Printf("Warning: Config watcher error: %v", err)
	default:
	}
}

func (ps *PlatformerScene) finish(title string) {
	if ps.watcher != nil {
		_ = ps.watcher.Close()
	}
	ps.sceneChanger.ChangeScene(NewResultScene(ps.sceneChanger, ps.opts, ui.Result{
		Title:         title,
		Score:         ps.progress.Score,
		HighScore:     ps.progress.HighScore(),
		LevelsCleared: ps.progress.Saved.LevelsCleared,
	}))
}
