package physics

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	cases := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_sub",
			run: func(t *testing.T) {
				v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4})
				if v != (Vec2{X: 4, Y: -2}) {
					t.Fatalf("add: got %v", v)
				}
				v = v.Sub(Vec2{X: 4, Y: -2})
				if v != (Vec2{}) {
					t.Fatalf("sub: got %v", v)
				}
			},
		},
		{
			name: "mul_dot",
			run: func(t *testing.T) {
				v := Vec2{X: 2, Y: -3}.Mul(2)
				if v != (Vec2{X: 4, Y: -6}) {
					t.Fatalf("mul: got %v", v)
				}
				if d := (Vec2{X: 1, Y: 2}).Dot(Vec2{X: 3, Y: 4}); d != 11 {
					t.Fatalf("dot: got %g", d)
				}
			},
		},
		{
			name: "length",
			run: func(t *testing.T) {
				v := Vec2{X: 3, Y: 4}
				if v.Length() != 5 {
					t.Fatalf("length: got %g", v.Length())
				}
				if v.LengthSquared() != 25 {
					t.Fatalf("length squared: got %g", v.LengthSquared())
				}
			},
		},
		{
			name: "normalize",
			run: func(t *testing.T) {
				n := Vec2{X: 0, Y: -7}.Normalize()
				if n != (Vec2{X: 0, Y: -1}) {
					t.Fatalf("normalize: got %v", n)
				}
				if l := (Vec2{X: 1, Y: 1}).Normalize().Length(); math.Abs(l-1) > 1e-15 {
					t.Fatalf("normalized length: got %g", l)
				}
			},
		},
		{
			name: "normalize_zero",
			run: func(t *testing.T) {
				if n := (Vec2{}).Normalize(); n != (Vec2{}) {
					t.Fatalf("zero vector normalized to %v", n)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, c.run)
	}
}
