// Package config loads body tables and run settings from scenario files, numeric tables or built-ins
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/physics"
)

var (
	ErrUnknownTimescale = errors.New("unknown timescale")
	ErrUnknownPolicy    = errors.New("unknown sub-step policy")
	ErrNoBodies         = errors.New("no bodies defined")
	ErrInvalidSetting   = errors.New("invalid setting")
)

const ExampleScenarioFile = `[Simulation]

# Step length: second, minute, hour, day, week, month or year.
Timescale = day
# Sub-step cap per body pair per step.
Substeps = 50
# flat or log.
Policy = flat
# Logical steps per rendered frame.
StepsPerTick = 1

[Camera]

# Re-fit the view every RefreshRate steps.
AutoFit = false
RefreshRate = 1000
# Name of a body to follow from the start.
# Follow = E

[Keys]

# Extra key bindings on top of the defaults, "none" unbinds a key.
# Bind = z zoom_in
# Bind = q none

[Body "Sol"]
Mass = 1.9891e30
Radius = 6.957e8
Color = yellow

[Body "E"]
Order = 1
DistanceAU = 1.0
Velocity = 29780
Mass = 5.97e24
Radius = 6.378e6
Color = green
Reference = Sol`

// SimulationConfig is the [Simulation] section
type SimulationConfig struct {
	Timescale    string
	Substeps     int
	Policy       string
	StepsPerTick int
	Workers      int
}

// CameraConfig is the [Camera] section
type CameraConfig struct {
	AutoFit     bool
	RefreshRate int
	Follow      string
}

// KeysConfig is the [Keys] section: repeated "Bind = <key> <action>" lines
type KeysConfig struct {
	Bind []string
}

// BodyConfig is one [Body "Name"] subsection
// Order sorts bodies in the table; ties fall back to the name
type BodyConfig struct {
	Order      int
	DistanceAU float64
	Velocity   float64
	Mass       float64
	Radius     float64
	Color      string
	Reference  string

	Name string
}

// Scenario is the gcfg wrapper for a scenario file
type Scenario struct {
	Simulation SimulationConfig
	Camera     CameraConfig
	Keys       KeysConfig
	Body       map[string]*BodyConfig
}

// DefaultScenario returns a scenario holding the interactive defaults and no bodies
func DefaultScenario() *Scenario {
	return &Scenario{
		Simulation: SimulationConfig{
			Timescale:    parameter.Timescales[parameter.DefaultTimescale].Name,
			Substeps:     parameter.DefaultSubsteps,
			Policy:       physics.SubstepFlat.String(),
			StepsPerTick: parameter.StepsPerTick,
			Workers:      1,
		},
		Camera: CameraConfig{
			RefreshRate: parameter.RefreshRate,
		},
	}
}

// ReadScenario parses a scenario file over the defaults
func ReadScenario(fname string) (*Scenario, error) {
	sc := DefaultScenario()
	if err := gcfg.ReadFileInto(sc, fname); err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", fname, err)
	}
	return sc, nil
}

// ParseScenario parses scenario text over the defaults
func ParseScenario(text string) (*Scenario, error) {
	sc := DefaultScenario()
	if err := gcfg.ReadStringInto(sc, text); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return sc, nil
}

// CheckInit validates the body and records its subsection name
func (bc *BodyConfig) CheckInit(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: Body subsection needs a name", ErrInvalidSetting)
	}
	if bc.Radius < 0 {
		return fmt.Errorf("%w: Body '%s' given a negative radius, %g", ErrInvalidSetting, name, bc.Radius)
	}
	if _, err := body.ParseColor(bc.Color); err != nil {
		return fmt.Errorf("%w: Body '%s': %v", ErrInvalidSetting, name, err)
	}
	bc.Name = name
	return nil
}

// Record converts a checked body config to a table row
func (bc *BodyConfig) Record() body.Record {
	c, _ := body.ParseColor(bc.Color)
	return body.Record{
		Name:       bc.Name,
		DistanceAU: bc.DistanceAU,
		Velocity:   bc.Velocity,
		Mass:       bc.Mass,
		Radius:     bc.Radius,
		Color:      c,
		Reference:  bc.Reference,
	}
}

// Records returns the scenario's body table in Order, then name order
func (sc *Scenario) Records() ([]body.Record, error) {
	if len(sc.Body) == 0 {
		return nil, ErrNoBodies
	}
	configs := make([]*BodyConfig, 0, len(sc.Body))
	for name, bc := range sc.Body {
		if bc == nil {
			bc = &BodyConfig{}
		}
		if err := bc.CheckInit(name); err != nil {
			return nil, err
		}
		configs = append(configs, bc)
	}
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Order != configs[j].Order {
			return configs[i].Order < configs[j].Order
		}
		return configs[i].Name < configs[j].Name
	})

	records := make([]body.Record, len(configs))
	for i, bc := range configs {
		records[i] = bc.Record()
	}
	return records, nil
}

// Options converts the [Simulation] and [Camera] sections to simulation options
func (sc *Scenario) Options() (engine.Options, error) {
	opts := engine.DefaultOptions()
	sim := sc.Simulation

	if sim.Timescale != "" {
		idx := parameter.TimescaleIndex(strings.ToLower(sim.Timescale))
		if idx < 0 {
			return opts, fmt.Errorf("%w: %q", ErrUnknownTimescale, sim.Timescale)
		}
		opts.Timescale = idx
	}
	policy, ok := physics.ParseSubstepPolicy(strings.ToLower(sim.Policy))
	if !ok {
		return opts, fmt.Errorf("%w: %q", ErrUnknownPolicy, sim.Policy)
	}
	opts.Policy = policy

	if sim.Substeps < parameter.MinSubsteps || sim.Substeps > parameter.MaxSubsteps {
		return opts, fmt.Errorf("%w: Substeps must be in [%d, %d], is %d",
			ErrInvalidSetting, parameter.MinSubsteps, parameter.MaxSubsteps, sim.Substeps)
	}
	opts.Substeps = sim.Substeps

	if sim.StepsPerTick < 1 || sim.StepsPerTick > parameter.MaxStepsPerTick {
		return opts, fmt.Errorf("%w: StepsPerTick must be in [1, %d], is %d",
			ErrInvalidSetting, parameter.MaxStepsPerTick, sim.StepsPerTick)
	}
	opts.StepsPerTick = sim.StepsPerTick

	if sim.Workers < 0 {
		return opts, fmt.Errorf("%w: Workers must be non-negative, is %d", ErrInvalidSetting, sim.Workers)
	}
	opts.Workers = sim.Workers

	if sc.Camera.RefreshRate < 1 {
		return opts, fmt.Errorf("%w: RefreshRate must be positive, is %d", ErrInvalidSetting, sc.Camera.RefreshRate)
	}
	opts.RefreshRate = sc.Camera.RefreshRate
	opts.AutoFit = sc.Camera.AutoFit
	opts.Follow = sc.Camera.Follow

	return opts, nil
}
