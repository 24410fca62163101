package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
)

// Momentum returns total linear momentum (kg m/s) of bodies with positive mass
func Momentum(bodies []*body.Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		if b.Mass <= 0 {
			continue
		}
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	return p
}

// KineticEnergy returns Σ ½mv² over bodies with positive mass
func KineticEnergy(bodies []*body.Body) float64 {
	var e float64
	for _, b := range bodies {
		if b.Mass <= 0 {
			continue
		}
		e += 0.5 * b.Mass * r2.Norm2(b.Vel)
	}
	return e
}

// PotentialEnergy returns -Σ G m_i m_j / r_ij over distinct massive pairs, with the MinSeparation floor
func PotentialEnergy(bodies []*body.Body) float64 {
	var e float64
	for i, a := range bodies {
		if a.Mass <= 0 {
			continue
		}
		for _, b := range bodies[i+1:] {
			if b.Mass <= 0 {
				continue
			}
			r := math.Max(r2.Norm(r2.Sub(a.Pos(), b.Pos())), parameter.MinSeparation)
			e -= parameter.G * a.Mass * b.Mass / r
		}
	}
	return e
}

// CenterOfMass returns the mass-weighted mean position in meters
// Falls back to the origin when no body has positive mass
func CenterOfMass(bodies []*body.Body) r2.Vec {
	var sum r2.Vec
	var m float64
	for _, b := range bodies {
		if b.Mass <= 0 {
			continue
		}
		sum = r2.Add(sum, r2.Scale(b.Mass, b.Pos()))
		m += b.Mass
	}
	if m == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/m, sum)
}

// Drift returns |now - initial| / |initial|, or |now| when initial is zero
func Drift(initial, now r2.Vec) float64 {
	delta := r2.Norm(r2.Sub(now, initial))
	ref := r2.Norm(initial)
	if ref == 0 {
		return delta
	}
	return delta / ref
}
