package body

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/orbits/vmath"
)

// Build errors
var (
	ErrInvalidRecord      = errors.New("invalid body record")
	ErrUnknownReference   = errors.New("unknown reference body")
	ErrAmbiguousReference = errors.New("ambiguous reference body")
	ErrReferenceCycle     = errors.New("reference cycle")
)

// Record is one row of the startup body table
// The body starts at (DistanceAU, 0) moving at (0, Velocity) in the frame of Reference
type Record struct {
	Name       string
	DistanceAU float64
	Velocity   float64 // m/s
	Mass       float64 // kg
	Radius     float64 // m
	Color      Color
	Reference  string // empty or own name: absolute
}

// Validate rejects non-finite numbers and negative radii
func (r Record) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"distance", r.DistanceAU},
		{"velocity", r.Velocity},
		{"mass", r.Mass},
		{"radius", r.Radius},
	}
	for _, f := range fields {
		if !vmath.Finite(f.v) {
			return fmt.Errorf("%w: %q has non-finite %s", ErrInvalidRecord, r.Name, f.name)
		}
	}
	if r.Radius < 0 {
		return fmt.Errorf("%w: %q has negative radius %g", ErrInvalidRecord, r.Name, r.Radius)
	}
	return nil
}

func (r Record) absolute() bool {
	return r.Reference == "" || r.Reference == r.Name
}
