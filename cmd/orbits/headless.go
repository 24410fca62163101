package main

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/physics"
	"github.com/lixenwraith/orbits/plot"
)

// summary is the outcome of a batch run
type summary struct {
	Steps         uint64
	ElapsedDays   float64
	MomentumDrift float64
	EnergyDrift   float64
}

// runHeadless advances sim by steps, feeding rec when non-nil, and writes a summary to w
func runHeadless(w io.Writer, sim *engine.Simulation, steps int, rec *plot.Recorder) summary {
	bodies := sim.Bodies()
	e0 := totalEnergy(sim)

	var observe func(uint64, []*body.Body)
	if rec != nil {
		observe = rec.Observe
	}
	sim.Run(steps, observe)

	snap := sim.Snapshot()
	sum := summary{
		Steps:         snap.Steps,
		ElapsedDays:   snap.ElapsedDays,
		MomentumDrift: snap.MomentumDrift,
		EnergyDrift:   relativeDrift(e0, totalEnergy(sim)),
	}

	fmt.Fprintf(w, "Simulated %d steps of one %s (%.1f days), %d bodies\n",
		sum.Steps, snap.Timescale, sum.ElapsedDays, len(bodies))
	fmt.Fprintf(w, "Momentum drift: %.3e\n", sum.MomentumDrift)
	fmt.Fprintf(w, "Energy drift:   %.3e\n", sum.EnergyDrift)
	if snap.Clamped > 0 {
		fmt.Fprintf(w, "Clamped pairs:  %d\n", snap.Clamped)
	}
	for _, b := range bodies {
		p := b.PosAU()
		fmt.Fprintf(w, "  %-12s x=%9.4f y=%9.4f |r|=%9.4f AU\n", b.Name, p.X, p.Y, r2.Norm(p))
	}
	return sum
}

func totalEnergy(sim *engine.Simulation) float64 {
	bodies := sim.Bodies()
	return physics.KineticEnergy(bodies) + physics.PotentialEnergy(bodies)
}

func relativeDrift(before, after float64) float64 {
	if before == 0 {
		return math.Abs(after)
	}
	return math.Abs((after - before) / before)
}
