// Package obj holds the presentation-side collaborators: input mapping and
// the camera. Neither owns any physics state.
package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame input state the simulation host reacts to.
type Input struct {
	// SpawnPressed is true on the frame the right mouse button was pressed.
	SpawnPressed bool
	// FocusNext/FocusPrev cycle the camera-followed body (Z / X).
	FocusNext bool
	FocusPrev bool
	// TogglePanel flips the planet creator panel (U).
	TogglePanel bool
	// TogglePause freezes/unfreezes the physics step (Space).
	TogglePause bool
	// WheelY is the vertical mouse wheel delta for zooming.
	WheelY float64
	// MouseWorldX/Y are the mouse cursor position in world coordinates.
	MouseWorldX float64
	MouseWorldY float64

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls the keyboard and mouse for this frame.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	vx, vy := i.camera.ViewTopLeft()
	i.MouseWorldX = vx + float64(mx)/i.camera.Zoom()
	i.MouseWorldY = vy + float64(my)/i.camera.Zoom()

	i.SpawnPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	i.FocusNext = inpututil.IsKeyJustPressed(ebiten.KeyZ)
	i.FocusPrev = inpututil.IsKeyJustPressed(ebiten.KeyX)
	i.TogglePanel = inpututil.IsKeyJustPressed(ebiten.KeyU)
	i.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	_, i.WheelY = ebiten.Wheel()
}
