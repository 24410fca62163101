// Package engine owns the simulation context and drives the tick pipeline
package engine

import (
	"image"
	"log"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/camera"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/physics"
	"github.com/lixenwraith/orbits/vmath"
)

// NoFollow marks the camera as not following any body
const NoFollow = -1

// Options configures a Simulation, zero values fall back to parameter defaults
type Options struct {
	Timescale    int                   // index into parameter.Timescales
	Substeps     int                   // sub-step cap per pair
	Policy       physics.SubstepPolicy // sub-step policy
	StepsPerTick int                   // logical steps per Tick
	Workers      int                   // force pass goroutines, <= 1 is serial
	RefreshRate  int                   // steps between auto-fits
	AutoFit      bool                  // fit every RefreshRate steps while not following
	Follow       string                // name of the initial follow target, empty for none
	Pixels       image.Rectangle       // initial camera pixel extent
}

// DefaultOptions returns the interactive defaults
func DefaultOptions() Options {
	return Options{
		Timescale:    parameter.DefaultTimescale,
		Substeps:     parameter.DefaultSubsteps,
		Policy:       physics.SubstepFlat,
		StepsPerTick: parameter.StepsPerTick,
		Workers:      1,
		RefreshRate:  parameter.RefreshRate,
		AutoFit:      false,
	}
}

// Simulation is the explicit simulation context: bodies, camera and every tunable the pipeline reads
// All exported methods are safe for concurrent use
type Simulation struct {
	mu sync.Mutex

	bodies []*body.Body
	camera *camera.Mapper
	acc    physics.Accumulator

	// Tunables
	timescale    int
	stepsPerTick int
	workers      int
	refreshRate  int

	// Camera policy
	autoFit   bool
	follow    int
	zoomLevel float64 // follow padding multiplier, scaled by zoom while following

	// Run state
	paused     bool
	steps      uint64
	ticks      uint64
	elapsed    float64 // simulated seconds
	objectSize int
	debug      bool

	// Diagnostics
	last            physics.PassStats
	clampedTotal    uint64
	initialMomentum r2.Vec
}

// NewSimulation creates a simulation over bodies
// The camera is fit once to the bodies and then forced to the default ±DefaultBoundsHalf AU view
func NewSimulation(bodies []*body.Body, opts Options) *Simulation {
	def := DefaultOptions()
	if opts.Timescale < 0 || opts.Timescale >= len(parameter.Timescales) {
		opts.Timescale = def.Timescale
	}
	if opts.Substeps <= 0 {
		opts.Substeps = def.Substeps
	}
	if opts.StepsPerTick <= 0 {
		opts.StepsPerTick = def.StepsPerTick
	}
	if opts.RefreshRate <= 0 {
		opts.RefreshRate = def.RefreshRate
	}

	half := parameter.DefaultBoundsHalf
	cam := camera.New(opts.Pixels, r2.NewBox(-half, -half, half, half))
	cam.Fit(bodies)
	_ = cam.ForceBounds(-half, half, -half, half)

	s := &Simulation{
		bodies: bodies,
		camera: cam,
		acc: physics.Accumulator{
			Policy:   opts.Policy,
			Substeps: vmath.ClampInt(opts.Substeps, parameter.MinSubsteps, parameter.MaxSubsteps),
		},
		timescale:       opts.Timescale,
		stepsPerTick:    vmath.ClampInt(opts.StepsPerTick, 1, parameter.MaxStepsPerTick),
		workers:         opts.Workers,
		refreshRate:     opts.RefreshRate,
		autoFit:         opts.AutoFit,
		follow:          NoFollow,
		zoomLevel:       1,
		objectSize:      parameter.DefaultObjectSize,
		initialMomentum: physics.Momentum(bodies),
	}
	for i, b := range bodies {
		if opts.Follow != "" && b.Name == opts.Follow {
			s.follow = i
			break
		}
	}
	s.mapDisplay()
	return s
}

// Tick runs StepsPerTick logical steps followed by the display-mapping pass
// A paused simulation does nothing; returns whether any step ran
func (s *Simulation) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return false
	}
	for i := 0; i < s.stepsPerTick; i++ {
		s.step()
	}
	s.ticks++
	s.mapDisplay()
	return true
}

// Run executes n logical steps without display mapping, for batch runs
// observe, if non-nil, is called after every step with the step count
// The lock is held per step only, so snapshot readers see live progress
// observe runs unlocked and must only read the bodies
func (s *Simulation) Run(n int, observe func(step uint64, bodies []*body.Body)) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		s.step()
		steps := s.steps
		s.mu.Unlock()

		if observe != nil {
			observe(steps, s.bodies)
		}
	}

	s.mu.Lock()
	s.mapDisplay()
	s.mu.Unlock()
}

// step is one pass of the pipeline: camera policy, force pass, integration, clocks
func (s *Simulation) step() {
	switch {
	case s.follow != NoFollow:
		s.camera.Follow(s.bodies[s.follow], s.followPadding())
	case s.autoFit && s.steps%uint64(s.refreshRate) == 0:
		s.camera.Fit(s.bodies)
	}

	dt := s.dt()
	stats := s.acc.ForcePass(s.bodies, dt, s.workers)
	if stats.Clamped > 0 {
		log.Printf("Step %d: %d pair(s) clamped to minimum separation", s.steps, stats.Clamped)
	}
	physics.Integrate(s.bodies, dt)

	s.last = stats
	s.clampedTotal += uint64(stats.Clamped)
	s.steps++
	s.elapsed += dt
}

// mapDisplay writes Display for every body from the current camera
// A followed body is re-centered first so its cell does not lag its motion
func (s *Simulation) mapDisplay() {
	if s.follow != NoFollow {
		s.camera.Follow(s.bodies[s.follow], s.followPadding())
	}
	for _, b := range s.bodies {
		b.Display = s.camera.Map(b.PosAU())
	}
}

func (s *Simulation) dt() float64 {
	return parameter.Timescales[s.timescale].Seconds
}

func (s *Simulation) followPadding() float64 {
	return parameter.FollowPadding * s.zoomLevel
}

// Bodies returns the body list; callers must not mutate it concurrently with Tick
func (s *Simulation) Bodies() []*body.Body {
	return s.bodies
}

// Resize updates the camera pixel extent and remaps
func (s *Simulation) Resize(pixels image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.Resize(pixels)
	s.mapDisplay()
}

// Unmap converts a screen cell to AU under the current camera
func (s *Simulation) Unmap(px image.Point) r2.Vec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.Unmap(px)
}
