package physics

import "image/color"

// Body is a simulated point-mass. Mass and radius are strictly positive for
// the lifetime of a body; callers enforce this at creation time.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Mass   float64
	Radius float64
	Color  color.RGBA

	// History logs the body's position after every step, oldest first.
	// It only grows; trail rendering is its sole consumer.
	History []Vec2
}

// NewBody creates a body with an empty history.
func NewBody(pos Vec2, radius float64, vel Vec2, mass float64, col color.RGBA) *Body {
	return &Body{
		Pos:    pos,
		Vel:    vel,
		Mass:   mass,
		Radius: radius,
		Color:  col,
	}
}
