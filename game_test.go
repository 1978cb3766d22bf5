package main

import "testing"

func TestWrapFocus(t *testing.T) {
	cases := []struct {
		name string
		i, n int
		want int
	}{
		{"empty", 3, 0, 0},
		{"in_range", 1, 3, 1},
		{"wraps_forward", 3, 3, 0},
		{"wraps_backward", -1, 3, 2},
		{"stale_after_removal", 2, 2, 0},
		{"far_negative", -7, 3, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := wrapFocus(c.i, c.n); got != c.want {
				t.Fatalf("wrapFocus(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
			}
		})
	}
}
