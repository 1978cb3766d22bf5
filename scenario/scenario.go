// Package scenario loads the initial body set for a simulation from YAML.
package scenario

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/kepler27b/planets/physics"
)

type Scenario struct {
	Name      string     `yaml:"name"`
	AutoOrbit bool       `yaml:"auto_orbit"`
	Camera    CameraSpec `yaml:"camera"`
	Bodies    []BodySpec `yaml:"bodies"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type BodySpec struct {
	Name     string     `yaml:"name"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Radius   float64    `yaml:"radius"`
	Velocity VelSpec    `yaml:"velocity"`
	Mass     float64    `yaml:"mass"`
	Color    *YAMLColor `yaml:"color"`
}

type VelSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Parse unmarshals and validates a scenario. Camera zoom defaults to 1.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: unmarshal: %w", err)
	}
	if sc.Camera.Zoom == 0 {
		sc.Camera.Zoom = 1
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// validate enforces the body invariants at creation time: mass and radius
// must be strictly positive before anything reaches the store.
func (sc *Scenario) validate() error {
	for i, b := range sc.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("body %d", i)
		}
		if b.Mass <= 0 {
			return fmt.Errorf("scenario: %s: mass must be positive, got %g", name, b.Mass)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("scenario: %s: radius must be positive, got %g", name, b.Radius)
		}
	}
	return nil
}

// Build converts the scenario into live bodies, applying auto-orbit
// velocities when requested.
func (sc *Scenario) Build() []*physics.Body {
	specs := make([]BodySpec, len(sc.Bodies))
	copy(specs, sc.Bodies)
	if sc.AutoOrbit {
		setOrbitalVelocities(specs)
	}

	bodies := make([]*physics.Body, len(specs))
	for i, b := range specs {
		col := MassColor(b.Mass)
		if b.Color != nil {
			col = b.Color.RGBA()
		}
		bodies[i] = physics.NewBody(
			physics.Vec2{X: b.X, Y: b.Y},
			b.Radius,
			physics.Vec2{X: b.Velocity.X, Y: b.Velocity.Y},
			b.Mass,
			col,
		)
	}
	return bodies
}

// setOrbitalVelocities gives every zero-velocity body after the first a
// circular-orbit velocity around the first body.
func setOrbitalVelocities(bodies []BodySpec) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Velocity.X != 0 || bodies[i].Velocity.Y != 0 {
			continue
		}
		dx := bodies[i].X - central.X
		dy := bodies[i].Y - central.Y
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(physics.G * central.Mass / r)
		bodies[i].Velocity.X = -dy / r * v
		bodies[i].Velocity.Y = dx / r * v
	}
}

// MassColor derives a stable HCL hue from a body's mass, for bodies that
// don't specify a color of their own.
func MassColor(mass float64) color.RGBA {
	c := colorful.Hcl(math.Remainder((math.Pi/mass)*360, 360), 0.9, 0.9).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// YAMLColor unmarshals "#rrggbb" or "#rrggbbaa" color strings.
type YAMLColor struct {
	R, G, B, A uint8
}

func (c *YAMLColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var err error
	if c.R, err = parse(0); err != nil {
		return err
	}
	if c.G, err = parse(2); err != nil {
		return err
	}
	if c.B, err = parse(4); err != nil {
		return err
	}
	c.A = 255
	if len(s) == 8 {
		if c.A, err = parse(6); err != nil {
			return err
		}
	}
	return nil
}
