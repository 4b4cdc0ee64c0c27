package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/fonts"
	"github.com/automoto/hopper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSolid    = color.RGBA{100, 100, 100, 255}
	colorPlatform = color.RGBA{160, 120, 60, 255}
	colorPlayer   = color.RGBA{0, 0, 255, 255}
	colorEnemy    = color.RGBA{255, 0, 0, 255}
	colorHazard   = color.RGBA{255, 128, 0, 255}
	colorPickup   = color.RGBA{255, 255, 0, 255}
	colorDoor     = color.RGBA{140, 70, 20, 255}
	colorTrigger  = color.RGBA{0, 255, 0, 255}
	colorProbe    = color.RGBA{0, 255, 255, 255}
	colorEffect   = color.RGBA{255, 255, 255, 255}
	colorLaser    = color.RGBA{255, 0, 255, 255}
)

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawDebug outlines every collision object in the space, colored by tag.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		// Cull objects outside viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}
		strokeRect(screen, x, y, obj.W, obj.H, objectColor(obj.HasTags))
	}

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		c := colorEffect
		c.A = uint8(255 * clampAlpha(effect.Alpha))
		vector.FillRect(screen, float32(effect.Position.X+camX-2), float32(effect.Position.Y+camY-2), 4, 4, c, false)
	})
}

func objectColor(has func(tags ...string) bool) color.Color {
	switch {
	case has(tags.ResolvProbe), has(tags.ResolvHead):
		return colorProbe
	case has(tags.ResolvPlayer):
		return colorPlayer
	case has(tags.ResolvLaser):
		return colorLaser
	case has(tags.ResolvEnemy):
		return colorEnemy
	case has(tags.ResolvDoor):
		return colorDoor
	case has(tags.ResolvSolid):
		return colorSolid
	case has(tags.ResolvPlatform):
		return colorPlatform
	case has(tags.ResolvHazard), has(tags.ResolvDeadZone):
		return colorHazard
	case has(tags.ResolvPickup):
		return colorPickup
	default:
		return colorTrigger
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func clampAlpha(a float32) float32 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// DrawHUD prints the player's health, lives, state and held keys.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		fonts.Draw(screen, "no player", fonts.HUD, 4, 4, color.White)
		return
	}
	health := components.Health.Get(player)
	motor := components.Player.Get(player)
	text := fmt.Sprintf("HP %d/%d  Lives %d  %s", health.Current, health.Max, health.Lives, motor.State)
	if keys := keyRingOf(ecs); keys != nil {
		text += fmt.Sprintf("  Keys %v", keys.Keys())
	}
	fonts.Draw(screen, text, fonts.HUD, 4, 4, color.White)
}
