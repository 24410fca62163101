package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/config"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/input"
)

// runConfig is the resolved command line
type runConfig struct {
	configPath string
	tablePath  string

	headless   bool
	steps      int
	plotPath   string
	sample     int
	metrics    string
	debug      bool
	mute       bool
	particles  int
	seed       uint64
	printScene bool

	// Overrides applied over the scenario when set on the command line
	set       map[string]bool
	substeps  int
	policy    string
	workers   int
	timescale string
	follow    string
	autofit   bool
}

// setup is everything a run needs, built before the screen opens
type setup struct {
	bodies []*body.Body
	opts   engine.Options
	keys   *input.KeyTable
}

// buildSetup reads the body source and scenario, applies flag overrides and builds the bodies
// Body source precedence: -bodies table, then scenario bodies, then the built-in solar system
func buildSetup(rc *runConfig) (*setup, error) {
	sc := config.DefaultScenario()
	if rc.configPath != "" {
		var err error
		if sc, err = config.ReadScenario(rc.configPath); err != nil {
			return nil, err
		}
	}
	applyOverrides(sc, rc)

	opts, err := sc.Options()
	if err != nil {
		return nil, fmt.Errorf("scenario options: %w", err)
	}

	var records []body.Record
	switch {
	case rc.tablePath != "":
		if records, err = config.ReadTable(rc.tablePath); err != nil {
			return nil, err
		}
	case len(sc.Body) > 0:
		if records, err = sc.Records(); err != nil {
			return nil, fmt.Errorf("scenario bodies: %w", err)
		}
	default:
		records = config.SolarSystem()
	}

	bodies, err := body.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build bodies: %w", err)
	}
	if rc.particles > 0 {
		bodies = config.AddRing(bodies, config.DefaultRing(rc.particles, rc.seed))
	}

	override, err := input.LoadKeyConfig(sc.Keys.Bind)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	return &setup{
		bodies: bodies,
		opts:   opts,
		keys:   input.MergeKeyTable(input.DefaultKeyTable(), override),
	}, nil
}

func applyOverrides(sc *config.Scenario, rc *runConfig) {
	if rc.set["substeps"] {
		sc.Simulation.Substeps = rc.substeps
	}
	if rc.set["policy"] {
		sc.Simulation.Policy = strings.ToLower(rc.policy)
	}
	if rc.set["workers"] {
		sc.Simulation.Workers = rc.workers
	}
	if rc.set["timescale"] {
		sc.Simulation.Timescale = rc.timescale
	}
	if rc.set["follow"] {
		sc.Camera.Follow = rc.follow
	}
	if rc.set["autofit"] {
		sc.Camera.AutoFit = rc.autofit
	}
}

// visited returns the names of the flags set on the command line
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
