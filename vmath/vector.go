package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bearing returns the angle of d from the +X axis, atan2(dy, dx)
func Bearing(d r2.Vec) float64 {
	return math.Atan2(d.Y, d.X)
}

// FromPolar returns the vector of length mag at angle theta
func FromPolar(mag, theta float64) r2.Vec {
	return r2.Vec{X: mag * math.Cos(theta), Y: mag * math.Sin(theta)}
}

// Perpendicular returns d rotated 90° counter-clockwise
func Perpendicular(d r2.Vec) r2.Vec {
	return r2.Vec{X: -d.Y, Y: d.X}
}

// IsFinite reports whether both components are neither NaN nor Inf
func IsFinite(v r2.Vec) bool {
	return Finite(v.X) && Finite(v.Y)
}

// Finite reports whether f is neither NaN nor Inf
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
