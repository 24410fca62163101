package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
)

// ApplyForce discharges the accumulated velocity increment: Vel += Acc, Acc = 0
func ApplyForce(b *body.Body) {
	b.Vel = r2.Add(b.Vel, b.Acc)
	b.Acc = r2.Vec{}
}

// ApplyVelocity advances position by Vel*dt; the AU cache is refreshed by the setter
func ApplyVelocity(b *body.Body, dt float64) {
	b.Translate(r2.Scale(dt, b.Vel))
}

// Integrate runs the semi-implicit Euler step for every body
// Must run only after the force pass has completed for all bodies
func Integrate(bodies []*body.Body, dt float64) {
	for _, b := range bodies {
		ApplyForce(b)
		ApplyVelocity(b, dt)
	}
}
