package main

import "image/color"

// SpawnParams is the "next planet" record the creator panel edits. It is
// independent of any live body; Spawn copies it into the store.
type SpawnParams struct {
	Radius float64
	Mass   float64
	VelX   float64
	VelY   float64
	R      uint8
	G      uint8
	B      uint8
}

func NewSpawnParams() *SpawnParams {
	return &SpawnParams{
		Radius: 10,
		Mass:   10,
		R:      255,
		G:      255,
		B:      255,
	}
}

func (p *SpawnParams) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
