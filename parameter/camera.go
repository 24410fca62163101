package parameter

// Camera bounds policy, all distances in AU
const (
	// FitPadding is added on every side of the tight bounding box by fit
	FitPadding = 1.0

	// FollowPadding is the default half-extent around a followed body
	FollowPadding = 1.0

	// MinBoundsExtent is the smallest allowed bounds width/height
	// Narrower ranges are widened about their center to keep pixels-per-unit finite
	MinBoundsExtent = 1.0e-6

	// MaxBoundsExtent caps bounds width/height and corner magnitude
	// Wider candidates are rejected so the span never overflows
	MaxBoundsExtent = 1.0e9

	// ZoomStep is the multiplicative factor for one zoom in/out command
	ZoomStep = 2.0

	// PanStep is the bounds translation for one pan command
	PanStep = 1.0

	// DefaultBoundsHalf is the half-extent of the initial forced bounds (±50 AU)
	DefaultBoundsHalf = 50.0
)

// Auto-fit cadence
const (
	// RefreshRate is the number of simulation steps between auto-fits
	RefreshRate = 1000
)
