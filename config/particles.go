package config

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/physics"
	"github.com/lixenwraith/orbits/vmath"
)

// Ring describes a belt of massless test particles on circular orbits
type Ring struct {
	Count     int
	InnerAU   float64
	OuterAU   float64
	Clockwise bool
	Seed      uint64
}

// DefaultRing is a main-belt style ring between Mars and Jupiter
func DefaultRing(count int, seed uint64) Ring {
	return Ring{Count: count, InnerAU: 2.2, OuterAU: 3.3, Seed: seed}
}

// AddRing appends r.Count zero-mass bodies orbiting the most massive body at uniform random angles and radii
// New IDs continue after the existing bodies; the same seed always yields the same ring
func AddRing(bodies []*body.Body, r Ring) []*body.Body {
	if r.Count <= 0 || len(bodies) == 0 {
		return bodies
	}
	center := bodies[0]
	for _, b := range bodies[1:] {
		if b.Mass > center.Mass {
			center = b
		}
	}

	inner, outer := math.Min(r.InnerAU, r.OuterAU), math.Max(r.InnerAU, r.OuterAU)
	rng := rand.New(rand.NewSource(r.Seed))
	next := len(bodies)

	for i := 0; i < r.Count; i++ {
		dist := (inner + rng.Float64()*(outer-inner)) * parameter.AU
		theta := rng.Float64() * 2 * math.Pi
		d := vmath.FromPolar(dist, theta)

		v := physics.OrbitalInsert(d, center.Mass, r.Clockwise)
		p := body.New(next, "", r2.Add(center.Pos(), d), r2.Add(center.Vel, v), 0, 0, body.Gray8)
		p.Ref = center.ID
		bodies = append(bodies, p)
		next++
	}
	return bodies
}
