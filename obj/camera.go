package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kepler27b/planets/common"
)

// Zoom limits and wheel sensitivity for interactive zooming.
const (
	MinZoom   = 0.1
	MaxZoom   = 1.0
	ZoomSpeed = 0.1
)

// Camera renders the world centered on a given world coordinate and
// supports zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). 0 snaps straight to the target.
	smooth float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: common.Clamp(zoom, MinZoom, MaxZoom)}
	c.off = ebiten.NewImage(screenW, screenH)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom, clamped to the interactive range.
func (c *Camera) SetZoom(z float64) {
	c.zoom = common.Clamp(z, MinZoom, MaxZoom)
}

// AdjustZoom applies a mouse-wheel delta to the zoom.
func (c *Camera) AdjustZoom(wheelY float64) {
	if wheelY == 0 {
		return
	}
	c.SetZoom(c.zoom + wheelY*ZoomSpeed)
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.off = nil
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Center returns the world coordinate at the middle of the view.
func (c *Camera) Center() (float64, float64) {
	return c.PosX, c.PosY
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
		return
	}
	c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
}

// SnapTo immediately sets the camera center to the given world coordinates,
// skipping smoothing. Use after a scenario load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
}

// Render clears the offscreen image, lets the caller draw the world into
// it, then blits it to the screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
