package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/vmath"
)

// CircularVelocity returns the speed of a circular orbit of radius r (m) around mass m (kg)
// v = sqrt(G*M / r)
func CircularVelocity(m, r float64) float64 {
	if m <= 0 || r <= 0 {
		return 0
	}
	return math.Sqrt(parameter.G * m / r)
}

// OrbitalInsert returns the velocity for circular orbit insertion
// d: position relative to the central mass (m)
// clockwise: orbit direction
func OrbitalInsert(d r2.Vec, m float64, clockwise bool) r2.Vec {
	r := r2.Norm(d)
	if r == 0 {
		return r2.Vec{}
	}

	speed := CircularVelocity(m, r)

	// Tangent is perpendicular to radius
	t := r2.Unit(vmath.Perpendicular(d))
	if clockwise {
		t = r2.Scale(-1, t)
	}

	return r2.Scale(speed, t)
}
