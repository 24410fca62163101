// Package body holds the simulated bodies and builds them from a body table
package body

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/parameter"
)

// NoRef marks a body specified in absolute coordinates
const NoRef = -1

// Body is a point mass with a render-only radius and color
// Position is authoritative in meters; the AU copy is a display cache kept in sync by the setters
type Body struct {
	ID     int
	Name   string
	Mass   float64 // kg, <= 0 exerts no force
	Radius float64 // m, render only

	Vel r2.Vec // m/s
	Acc r2.Vec // velocity increment accumulated over the current step, zeroed after integration

	Color Color

	// Ref indexes the reference body resolved at build time, NoRef for absolute bodies
	Ref int

	// Display is the last mapped pixel position, written by the camera pass
	Display image.Point

	pos   r2.Vec
	posAU r2.Vec
}

// New creates a body at position pos (meters) with velocity vel
func New(id int, name string, pos, vel r2.Vec, mass, radius float64, color Color) *Body {
	if name == "" {
		name = fmt.Sprintf("Body #%d", id)
	}
	b := &Body{
		ID:     id,
		Name:   name,
		Mass:   mass,
		Radius: radius,
		Vel:    vel,
		Color:  color,
		Ref:    NoRef,
	}
	b.SetPosition(pos)
	return b
}

// Pos returns the position in meters
func (b *Body) Pos() r2.Vec {
	return b.pos
}

// PosAU returns the cached position in astronomical units
func (b *Body) PosAU() r2.Vec {
	return b.posAU
}

// SetPosition replaces the position and refreshes the AU cache
func (b *Body) SetPosition(p r2.Vec) {
	b.pos = p
	b.posAU = r2.Scale(1/parameter.AU, p)
}

// Translate offsets the position by d meters and refreshes the AU cache
func (b *Body) Translate(d r2.Vec) {
	b.SetPosition(r2.Add(b.pos, d))
}

// Attracts reports whether b pulls on target: b must have positive mass and be a different body
// Bodies sharing a name are treated as the same logical body
func (b *Body) Attracts(target *Body) bool {
	if b.Mass <= 0 {
		return false
	}
	if b.ID == target.ID {
		return false
	}
	return b.Name != target.Name
}

func (b *Body) String() string {
	return fmt.Sprintf("%s(#%d)", b.Name, b.ID)
}
