package engine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/physics"
)

// Sprite is the render handoff for one body
type Sprite struct {
	X, Y     int
	Color    body.Color
	Radius   int // drawn radius in cells
	Name     string
	Followed bool
}

// Snapshot is a consistent copy of the simulation context for presentation and metrics
type Snapshot struct {
	Timescale     string
	StepSeconds   float64
	Substeps      int
	Policy        physics.SubstepPolicy
	Steps         uint64
	Ticks         uint64
	ElapsedDays   float64
	Elapsed       float64 // simulated seconds
	Follow        string  // empty when not following
	Paused        bool
	AutoFit       bool
	Debug         bool
	Bounds        r2.Box
	Bodies        int
	LastPairs     int
	Clamped       uint64 // pairs clamped to MinSeparation since start
	MomentumDrift float64
}

// Frame returns the sprites at their mapped cells and a snapshot, taken under one lock
func (s *Simulation) Frame() ([]Sprite, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sprites := make([]Sprite, len(s.bodies))
	for i, b := range s.bodies {
		sprites[i] = Sprite{
			X:        b.Display.X,
			Y:        b.Display.Y,
			Color:    b.Color,
			Radius:   s.objectSize,
			Name:     b.Name,
			Followed: i == s.follow,
		}
	}
	return sprites, s.snapshot()
}

// Snapshot returns a copy of the context state
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Simulation) snapshot() Snapshot {
	ts := parameter.Timescales[s.timescale]
	snap := Snapshot{
		Timescale:     ts.Name,
		StepSeconds:   ts.Seconds,
		Substeps:      s.acc.Substeps,
		Policy:        s.acc.Policy,
		Steps:         s.steps,
		Ticks:         s.ticks,
		Elapsed:       s.elapsed,
		ElapsedDays:   s.elapsed / parameter.SecondsPerDay,
		Paused:        s.paused,
		AutoFit:       s.autoFit,
		Debug:         s.debug,
		Bounds:        s.camera.Bounds(),
		Bodies:        len(s.bodies),
		LastPairs:     s.last.Pairs,
		Clamped:       s.clampedTotal,
		MomentumDrift: physics.Drift(s.initialMomentum, physics.Momentum(s.bodies)),
	}
	if s.follow != NoFollow {
		snap.Follow = s.bodies[s.follow].Name
	}
	return snap
}

// DebugLines returns one column of text lines per body
func (s *Simulation) DebugLines() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := make([][]string, len(s.bodies))
	for i, b := range s.bodies {
		au := b.PosAU()
		cols[i] = []string{
			b.Name,
			fmt.Sprintf("x  %.4g m", b.Pos().X),
			fmt.Sprintf("y  %.4g m", b.Pos().Y),
			fmt.Sprintf("au %.4f, %.4f", au.X, au.Y),
			fmt.Sprintf("px %d, %d", b.Display.X, b.Display.Y),
			fmt.Sprintf("|r| %.4f AU", r2.Norm(au)),
			fmt.Sprintf("v  %.4g, %.4g", b.Vel.X, b.Vel.Y),
			fmt.Sprintf("|v| %.4g m/s", r2.Norm(b.Vel)),
		}
	}
	return cols
}
