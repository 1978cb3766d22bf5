package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// trailColor matches the faint white polyline of the original sandbox.
var trailColor = color.NRGBA{R: 255, G: 255, B: 255, A: 26}

// drawWorld renders trails first, then bodies, in store order. It only
// reads simulation state.
func (g *Game) drawWorld(world *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	toScreen := func(wx, wy float64) (float32, float32) {
		return float32((wx - camX) * zoom), float32((wy - camY) * zoom)
	}

	for _, b := range g.store.Bodies() {
		for i := 1; i < len(b.History); i++ {
			x0, y0 := toScreen(b.History[i-1].X, b.History[i-1].Y)
			x1, y1 := toScreen(b.History[i].X, b.History[i].Y)
			vector.StrokeLine(world, x0, y0, x1, y1, 1, trailColor, false)
		}
	}

	for _, b := range g.store.Bodies() {
		cx, cy := toScreen(b.Pos.X, b.Pos.Y)
		vector.FillCircle(world, cx, cy, float32(b.Radius*zoom), b.Color, true)
	}
}
