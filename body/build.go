package body

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/parameter"
)

// Build constructs bodies from the table in order, resolves reference names to indexes once,
// then promotes every referenced body to absolute coordinates exactly once, parents first
func Build(records []Record) ([]*Body, error) {
	bodies := make([]*Body, len(records))
	byName := make(map[string][]int, len(records))

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		pos := r2.Vec{X: r.DistanceAU * parameter.AU}
		vel := r2.Vec{Y: r.Velocity}
		bodies[i] = New(i, r.Name, pos, vel, r.Mass, r.Radius, r.Color)
		byName[bodies[i].Name] = append(byName[bodies[i].Name], i)
	}

	for i, r := range records {
		if r.absolute() {
			continue
		}
		idx, ok := byName[r.Reference]
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %q references %q", ErrUnknownReference, bodies[i].Name, r.Reference)
		case len(idx) > 1:
			return nil, fmt.Errorf("%w: %q references %q shared by %d bodies", ErrAmbiguousReference, bodies[i].Name, r.Reference, len(idx))
		}
		bodies[i].Ref = idx[0]
	}

	order, err := promotionOrder(bodies)
	if err != nil {
		return nil, err
	}
	for _, i := range order {
		b := bodies[i]
		if b.Ref == NoRef {
			continue
		}
		parent := bodies[b.Ref]
		b.Translate(parent.Pos())
		b.Vel = r2.Add(b.Vel, parent.Vel)
	}

	return bodies, nil
}

// promotionOrder returns body indexes with every parent before its children
func promotionOrder(bodies []*Body) ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]uint8, len(bodies))
	order := make([]int, 0, len(bodies))

	for start := range bodies {
		// Walk up the reference chain, then emit from the root down
		var chain []int
		i := start
		for i != NoRef && state[i] != done {
			if state[i] == visiting {
				return nil, fmt.Errorf("%w: through %q", ErrReferenceCycle, bodies[i].Name)
			}
			state[i] = visiting
			chain = append(chain, i)
			i = bodies[i].Ref
		}
		for j := len(chain) - 1; j >= 0; j-- {
			state[chain[j]] = done
			order = append(order, chain[j])
		}
	}
	return order, nil
}
