package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/fonts"
	"github.com/automoto/hopper/levels"
	"github.com/automoto/hopper/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", levels.Default, "Level file inside the bundled levels")
	configPath := flag.String("config", "", "YAML config overlay, reloaded on change")
	debug := flag.Bool("debug", true, "Draw collision outlines")
	appName := flag.String("save", "hopper", "Save data application name (empty = don't persist)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Hopper")
	ebiten.SetTPS(config.C.TickRate)

	opts := scenes.Options{
		LevelPath:  *level,
		ConfigPath: *configPath,
		AppName:    *appName,
		Debug:      *debug,
	}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
