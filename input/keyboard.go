package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads the local keyboard and any connected standard-layout
// gamepads.
type Keyboard struct {
	Bindings map[Action]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	gamepads []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings:       DefaultBindings(),
		AnalogDeadzone: 0.25,
	}
}

// Poll refreshes the connected gamepad list.
func (k *Keyboard) Poll() {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
}

func (k *Keyboard) HorizontalMovement() float64 {
	h := 0.0
	if k.pressed(ActionMoveLeft) {
		h--
	}
	if k.pressed(ActionMoveRight) {
		h++
	}
	if h != 0 {
		return h
	}
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(v) >= k.AnalogDeadzone {
			return v
		}
	}
	return 0
}

func (k *Keyboard) JumpStarted() bool {
	return k.justPressed(ActionJump)
}

func (k *Keyboard) ShootStarted() bool {
	return k.justPressed(ActionShoot)
}

func (k *Keyboard) justPressed(a Action) bool {
	b := k.Bindings[a]
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) JumpHeld() bool {
	return k.pressed(ActionJump)
}

func (k *Keyboard) pressed(a Action) bool {
	b := k.Bindings[a]
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
