package scenes

import (
	"image/color"

	"github.com/automoto/hopper/input"
	"github.com/automoto/hopper/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultScene shows the end of a run and restarts the level on Enter, the
// jump button or a click on "Play again".
type ResultScene struct {
	sceneChanger SceneChanger
	opts         Options
	resultUI     *ui.ResultUI
	keyboard     *input.Keyboard
	restart      bool
}

func NewResultScene(sc SceneChanger, opts Options, result ui.Result) *ResultScene {
	rs := &ResultScene{
		sceneChanger: sc,
		opts:         opts,
		keyboard:     input.NewKeyboard(),
	}
	rs.resultUI = ui.NewResultUI(result, func() { rs.restart = true })
	return rs
}

func (rs *ResultScene) Update() {
	rs.resultUI.Update()
	rs.keyboard.Poll()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || rs.keyboard.JumpStarted() {
		rs.restart = true
	}
	if rs.restart {
		rs.sceneChanger.ChangeScene(NewPlatformerScene(rs.sceneChanger, rs.opts))
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	rs.resultUI.UI.Draw(screen)
}
