package parameter

// Physical constants
const (
	// G is the gravitational constant in m^3 kg^-1 s^-2
	G = 6.67384e-11

	// AU is the astronomical unit in meters, the camera's coordinate unit
	AU = 1.49597871e11

	// SolarMass is the mass of the Sun in kilograms
	SolarMass = 1.9891e30
)

// Force accumulation
const (
	// MinSeparation is the distance floor in meters applied before 1/r²
	// Coincident distinct bodies are clamped to this separation instead of producing Inf/NaN
	MinSeparation = 1.0e3

	// DefaultSubsteps is the initial sub-step cap per body pair per step
	DefaultSubsteps = 50

	// MinSubsteps is the floor for decrementing the sub-step cap
	MinSubsteps = 2

	// MaxSubsteps bounds incrementing the sub-step cap
	MaxSubsteps = 10000

	// LogSubstepKnee is the log10 distance at or below which the log policy uses the full cap
	LogSubstepKnee = 1.0
)
