package physics

import (
	"image/color"
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestStepEmptyAndSingle(t *testing.T) {
	cases := []struct {
		name   string
		bodies []*Body
	}{
		{"empty", nil},
		{"single_at_rest", []*Body{NewBody(Vec2{X: 50, Y: 50}, 5, Vec2{}, 10, color.RGBA{})}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var before []Vec2
			for _, b := range c.bodies {
				before = append(before, b.Pos)
			}
			Step(c.bodies)
			for i, b := range c.bodies {
				if b.Pos != before[i] {
					t.Fatalf("body %d moved with no other bodies present: %v -> %v", i, before[i], b.Pos)
				}
				if b.Vel != (Vec2{}) {
					t.Fatalf("body %d gained velocity with no other bodies present: %v", i, b.Vel)
				}
			}
		})
	}
}

func TestStepGravitySymmetry(t *testing.T) {
	a := NewBody(Vec2{X: 0, Y: 0}, 1, Vec2{}, 3, color.RGBA{})
	b := NewBody(Vec2{X: 50, Y: 0}, 1, Vec2{}, 7, color.RGBA{})

	Step([]*Body{a, b})

	magA := a.Vel.Length()
	magB := b.Vel.Length()
	if !almostEqual(magA, magB) {
		t.Fatalf("acceleration magnitudes differ: %g vs %g", magA, magB)
	}
	if a.Vel.X <= 0 || b.Vel.X >= 0 {
		t.Fatalf("accelerations not opposite: a.Vel=%v b.Vel=%v", a.Vel, b.Vel)
	}
}

// The acceleration magnitude deliberately folds in the body's own mass:
// G*massOther*massSelf/d², not force/mass.
func TestStepConcreteScenario(t *testing.T) {
	a := NewBody(Vec2{X: 0, Y: 0}, 5, Vec2{}, 5, color.RGBA{})
	b := NewBody(Vec2{X: 100, Y: 0}, 10, Vec2{}, 10, color.RGBA{})

	Step([]*Body{a, b})

	want := G * 5 * 10 / (100.0 * 100.0) // 5e-4
	if !almostEqual(a.Pos.X, want) {
		t.Fatalf("light body moved %g, want %g", a.Pos.X, want)
	}
	if !almostEqual(b.Pos.X, 100-want) {
		t.Fatalf("heavy body moved to %g, want %g", b.Pos.X, 100-want)
	}
}

func TestStepCollisionExchange(t *testing.T) {
	cases := []struct {
		name string
		vel  float64
	}{
		{"unit_speed", 1},
		{"slow", 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Equal masses, overlapping, head-on along x. Each body receives
			// exactly one impulse computed against the frame-start snapshot,
			// so velocities swap scaled by the restitution coefficient.
			const d = 10.0
			a := NewBody(Vec2{X: 0, Y: 0}, 6, Vec2{X: c.vel}, 1, color.RGBA{})
			b := NewBody(Vec2{X: d, Y: 0}, 6, Vec2{X: -c.vel}, 1, color.RGBA{})

			Step([]*Body{a, b})

			grav := G * 1 * 1 / (d * d)
			wantA := c.vel - 2*c.vel*Restitution + grav
			wantB := -c.vel + 2*c.vel*Restitution - grav
			if !almostEqual(a.Vel.X, wantA) {
				t.Fatalf("a.Vel.X = %g, want %g", a.Vel.X, wantA)
			}
			if !almostEqual(b.Vel.X, wantB) {
				t.Fatalf("b.Vel.X = %g, want %g", b.Vel.X, wantB)
			}
			if !almostEqual(a.Vel.Y, 0) || !almostEqual(b.Vel.Y, 0) {
				t.Fatalf("head-on collision leaked off-normal velocity: %v %v", a.Vel, b.Vel)
			}
		})
	}
}

func TestStepCoincidentBodiesSkip(t *testing.T) {
	// Two distinct bodies at bit-identical positions treat each other as
	// "self" and skip their mutual interaction entirely.
	a := NewBody(Vec2{X: 5, Y: 5}, 2, Vec2{}, 1, color.RGBA{})
	b := NewBody(Vec2{X: 5, Y: 5}, 2, Vec2{}, 1, color.RGBA{})

	Step([]*Body{a, b})

	if a.Vel != (Vec2{}) || b.Vel != (Vec2{}) {
		t.Fatalf("coincident bodies interacted: a.Vel=%v b.Vel=%v", a.Vel, b.Vel)
	}
	if a.Pos != (Vec2{X: 5, Y: 5}) || b.Pos != (Vec2{X: 5, Y: 5}) {
		t.Fatalf("coincident bodies moved: a.Pos=%v b.Pos=%v", a.Pos, b.Pos)
	}
}

func TestStepHistoryGrowth(t *testing.T) {
	cases := []struct {
		name  string
		steps int
	}{
		{"one", 1},
		{"many", 25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewBody(Vec2{X: 0, Y: 0}, 1, Vec2{X: 0.5}, 2, color.RGBA{})
			b := NewBody(Vec2{X: 200, Y: 0}, 1, Vec2{}, 2, color.RGBA{})
			bodies := []*Body{a, b}

			for i := 0; i < c.steps; i++ {
				Step(bodies)
			}

			for i, body := range bodies {
				if len(body.History) != c.steps {
					t.Fatalf("body %d history length %d, want %d", i, len(body.History), c.steps)
				}
				if body.History[len(body.History)-1] != body.Pos {
					t.Fatalf("body %d last history entry %v != current position %v",
						i, body.History[len(body.History)-1], body.Pos)
				}
			}
		})
	}
}

func TestStepResolvesOverlapsBackToFront(t *testing.T) {
	// A body overlapping two neighbors resolves them from the highest index
	// down, and its own velocity carries between the two impulses. Here the
	// lower-indexed neighbor (visited second) drives the only nonzero
	// impulse, so the center body ends at exactly 2*m*m/(m+m)*|relVel|*R =
	// Restitution. Front-to-back resolution would damp it to 0.21 instead.
	center := NewBody(Vec2{X: 0, Y: 0}, 1, Vec2{}, 1, color.RGBA{})
	moving := NewBody(Vec2{X: 1, Y: 0}, 1, Vec2{X: 1}, 1, color.RGBA{})
	resting := NewBody(Vec2{X: -1, Y: 0}, 1, Vec2{}, 1, color.RGBA{})

	Step([]*Body{center, moving, resting})

	if !almostEqual(center.Vel.X, Restitution) {
		t.Fatalf("center.Vel.X = %g, want %g", center.Vel.X, Restitution)
	}
	if !almostEqual(center.Vel.Y, 0) {
		t.Fatalf("collision along x leaked y velocity: %v", center.Vel)
	}
}

func TestStepReadsFrameStartPositions(t *testing.T) {
	// Three bodies in a line. The middle body is processed last; its
	// acceleration must be computed against where the outer bodies started
	// the frame, not where they already moved to, so a symmetric setup
	// yields zero net acceleration.
	left := NewBody(Vec2{X: -100, Y: 0}, 1, Vec2{}, 4, color.RGBA{})
	right := NewBody(Vec2{X: 100, Y: 0}, 1, Vec2{}, 4, color.RGBA{})
	mid := NewBody(Vec2{X: 0, Y: 0}, 1, Vec2{}, 2, color.RGBA{})

	Step([]*Body{left, right, mid})

	if !almostEqual(mid.Vel.X, 0) || !almostEqual(mid.Vel.Y, 0) {
		t.Fatalf("middle body accelerated in a symmetric field: %v", mid.Vel)
	}
}
