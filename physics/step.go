package physics

const (
	// G is the gravitational constant, scaled for on-screen distances.
	G = 0.1
	// Restitution damps the collision impulse; 1 is perfectly elastic.
	Restitution = 0.3
)

// bodyState is the frame-start snapshot a body interacts against. Impulses
// applied to the "other" side land on the snapshot, so bodies processed
// later in the same step see them, but a body never sees impulses applied
// to its own snapshot entry.
type bodyState struct {
	pos    Vec2
	vel    Vec2
	mass   float64
	radius float64
}

// Step advances every body by one frame: pairwise gravity, overlap impulses,
// then integration and a history append. Bodies are processed in slice
// order; each body reads positions from a snapshot taken at frame start, so
// gravity stays symmetric even though earlier bodies have already moved.
// Each body walks the snapshot back to front. Self-side impulses land on the
// body's live velocity mid-walk, so when a body overlaps two or more others
// the visit order is part of the result, not a rounding detail.
//
// A pair is skipped when both positions are bit-identical. That is how a
// body excludes itself, and it also means two distinct bodies at the exact
// same coordinates ignore each other entirely. Degenerate separations are
// not guarded; NaN/Inf propagate.
func Step(bodies []*Body) {
	if len(bodies) == 0 {
		return
	}

	others := make([]bodyState, len(bodies))
	for i, b := range bodies {
		others[i] = bodyState{pos: b.Pos, vel: b.Vel, mass: b.Mass, radius: b.Radius}
	}

	for _, b := range bodies {
		var accel Vec2

		for i := len(others) - 1; i >= 0; i-- {
			o := &others[i]
			if b.Pos == o.pos {
				continue
			}

			dir := o.pos.Sub(b.Pos)
			d2 := dir.LengthSquared()
			forceMag := G * (o.mass * b.Mass) / d2

			accel = accel.Add(dir.Normalize().Mul(forceMag))

			if sum := b.Radius + o.radius; d2 <= sum*sum {
				normal := dir.Normalize()
				relVel := b.Vel.Sub(o.vel)
				impulse := 2 * b.Mass * o.mass / (b.Mass + o.mass) * relVel.Dot(normal) * Restitution

				b.Vel = b.Vel.Sub(normal.Mul(impulse))
				o.vel = o.vel.Add(normal.Mul(impulse))
			}
		}

		b.Vel = b.Vel.Add(accel)
		b.Pos = b.Pos.Add(b.Vel)
		b.History = append(b.History, b.Pos)
	}
}
