package physics

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/vmath"
)

// SubstepPolicy selects how many sub-steps a body pair receives per step
type SubstepPolicy uint8

const (
	// SubstepFlat applies the configured cap to every pair
	SubstepFlat SubstepPolicy = iota
	// SubstepLog scales the cap down by log10 of the pair distance, so near pairs get finer sub-steps
	SubstepLog
)

func (p SubstepPolicy) String() string {
	switch p {
	case SubstepFlat:
		return "flat"
	case SubstepLog:
		return "log"
	default:
		return "unknown"
	}
}

// ParseSubstepPolicy maps "flat"/"log" to a policy
func ParseSubstepPolicy(s string) (SubstepPolicy, bool) {
	switch s {
	case "", "flat":
		return SubstepFlat, true
	case "log":
		return SubstepLog, true
	}
	return SubstepFlat, false
}

// Count returns the number of sub-steps for a pair at distance r (meters)
func (p SubstepPolicy) Count(limit int, r float64) int {
	if limit < 1 {
		limit = 1
	}
	if p == SubstepLog {
		return vmath.LogScaledCount(limit, r, parameter.LogSubstepKnee)
	}
	return limit
}

// PassStats summarizes one force accumulation
type PassStats struct {
	Pairs    int // attractor pairs evaluated
	Substeps int // sub-step contributions applied
	Clamped  int // pairs whose separation hit the MinSeparation floor
}

func (s *PassStats) add(o PassStats) {
	s.Pairs += o.Pairs
	s.Substeps += o.Substeps
	s.Clamped += o.Clamped
}

// Accumulator computes sub-stepped pairwise gravity
type Accumulator struct {
	Policy   SubstepPolicy
	Substeps int // cap on sub-steps per pair
}

// Accumulate adds to b.Acc the velocity increment over a step of length dt seconds from every attractor
// Separation and bearing are fixed per pair for the whole step; only sub-time advances
// Reads positions only; writes b.Acc only
func (a Accumulator) Accumulate(b *body.Body, bodies []*body.Body, dt float64) PassStats {
	var stats PassStats
	for _, other := range bodies {
		if !other.Attracts(b) {
			continue
		}
		stats.Pairs++

		d := r2.Sub(other.Pos(), b.Pos())
		r := r2.Norm(d)
		if r < parameter.MinSeparation {
			r = parameter.MinSeparation
			stats.Clamped++
		}
		theta := vmath.Bearing(d)

		k := a.Policy.Count(a.Substeps, r)
		sub := dt / float64(k)
		g := parameter.G * other.Mass / (r * r) * sub
		step := vmath.FromPolar(g, theta)
		for i := 0; i < k; i++ {
			b.Acc = r2.Add(b.Acc, step)
		}
		stats.Substeps += k
	}
	return stats
}

// ForcePass resets every accumulator, then accumulates gravity for all bodies
// With workers > 1, bodies are split into contiguous per-body partitions; each goroutine writes only its own bodies
// Returns after every body is done, so integration never overlaps force evaluation
func (a Accumulator) ForcePass(bodies []*body.Body, dt float64, workers int) PassStats {
	for _, b := range bodies {
		b.Acc = r2.Vec{}
	}

	if workers <= 1 || len(bodies) < 2 {
		var total PassStats
		for _, b := range bodies {
			total.add(a.Accumulate(b, bodies, dt))
		}
		return total
	}

	if workers > len(bodies) {
		workers = len(bodies)
	}
	chunk := (len(bodies) + workers - 1) / workers
	partial := make([]PassStats, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(bodies))
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for _, b := range bodies[lo:hi] {
				partial[w].add(a.Accumulate(b, bodies, dt))
			}
		}(w, lo, hi)
	}
	wg.Wait()

	var total PassStats
	for _, p := range partial {
		total.add(p)
	}
	return total
}
