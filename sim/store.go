// Package sim owns the authoritative body set for a running simulation.
package sim

import (
	"image/color"

	"github.com/kepler27b/planets/physics"
)

// Store holds bodies in insertion order. It is exclusively owned by the
// simulation loop; there is no locking.
type Store struct {
	bodies []*physics.Body
}

func NewStore() *Store {
	return &Store{}
}

// Spawn appends a new body with an empty history and returns its index.
func (s *Store) Spawn(pos physics.Vec2, radius float64, vel physics.Vec2, mass float64, col color.RGBA) int {
	s.bodies = append(s.bodies, physics.NewBody(pos, radius, vel, mass, col))
	return len(s.bodies) - 1
}

// Add appends an existing body, e.g. one built from a scenario.
func (s *Store) Add(b *physics.Body) int {
	s.bodies = append(s.bodies, b)
	return len(s.bodies) - 1
}

// Remove deletes the body at index, shifting later indices down by one.
// An out-of-range index is a no-op and returns false. Externally held
// focus indices become stale after a removal; callers re-wrap them.
func (s *Store) Remove(index int) bool {
	if index < 0 || index >= len(s.bodies) {
		return false
	}
	s.bodies = append(s.bodies[:index], s.bodies[index+1:]...)
	return true
}

// Clear drops every body, e.g. before a scenario reload.
func (s *Store) Clear() {
	s.bodies = nil
}

func (s *Store) Len() int {
	return len(s.bodies)
}

// At returns the body at index, or nil when out of range.
func (s *Store) At(index int) *physics.Body {
	if index < 0 || index >= len(s.bodies) {
		return nil
	}
	return s.bodies[index]
}

// Bodies returns the backing slice in insertion order. Renderers treat it
// as read-only.
func (s *Store) Bodies() []*physics.Body {
	return s.bodies
}

// Step advances the whole set by one frame.
func (s *Store) Step() {
	physics.Step(s.bodies)
}
