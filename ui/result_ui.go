package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/hopper/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Result is what the end-of-run screen reports.
type Result struct {
	Title         string
	Score         int
	HighScore     int
	LevelsCleared int
}

// ResultUI holds the ebitenui interface shown after a level ends
type ResultUI struct {
	UI     *ebitenui.UI
	Result Result

	// Callbacks
	OnPlayAgain func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewResultUI creates the result screen. Fonts must already be loaded.
func NewResultUI(result Result, onPlayAgain func()) *ResultUI {
	rui := &ResultUI{
		Result:      result,
		OnPlayAgain: onPlayAgain,
		titleFace:   fonts.Title.Get(),
		normalFace:  fonts.HUD.Get(),
		smallFace:   fonts.Small.Get(),
	}
	rui.buildUI()
	return rui
}

func (rui *ResultUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(rui.Result.Title, &rui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Score %d  Best %d", rui.Result.Score, rui.Result.HighScore), &rui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Levels cleared %d", rui.Result.LevelsCleared), &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(rui.buttonImage()),
		widget.ButtonOpts.Text("Play again", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnPlayAgain != nil {
				rui.OnPlayAgain()
			}
		}),
	)
	contentContainer.AddChild(playButton)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter or jump to play again", &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 140, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *ResultUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{60, 130, 60, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{30, 70, 30, 255}),
	}
}

// Update calls the UI's Update method
func (rui *ResultUI) Update() {
	rui.UI.Update()
}
