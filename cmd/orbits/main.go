// Command orbits runs a 2D gravitational N-body simulation in the terminal or as a batch job
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/orbits/audio"
	"github.com/lixenwraith/orbits/config"
	"github.com/lixenwraith/orbits/core"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/metrics"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/plot"
)

// headlessPixels is the nominal camera extent of a batch run
var headlessPixels = image.Rect(0, 0, 80, 24)

func parseFlags(args []string) (*runConfig, error) {
	rc := &runConfig{}
	fs := flag.NewFlagSet("orbits", flag.ContinueOnError)

	fs.StringVar(&rc.configPath, "config", "", "gcfg scenario file")
	fs.StringVar(&rc.tablePath, "bodies", "", "numeric body table (distanceAU velocity mass radius reference)")
	fs.BoolVar(&rc.headless, "headless", false, "run without a terminal UI (implied when stdout is not a terminal)")
	fs.IntVar(&rc.steps, "steps", parameter.HeadlessSteps, "steps for a headless run")
	fs.StringVar(&rc.plotPath, "plot", "", "save the headless trajectories to this image file")
	fs.IntVar(&rc.sample, "sample", parameter.SampleEvery, "trajectory sampling stride in steps")
	fs.StringVar(&rc.metrics, "metrics", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&rc.debug, "debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	fs.BoolVar(&rc.mute, "mute", false, "start with audio muted")
	fs.IntVar(&rc.particles, "particles", 0, "add a ring of massless test particles")
	fs.Uint64Var(&rc.seed, "seed", 1, "particle ring seed")
	fs.BoolVar(&rc.printScene, "example", false, "print an example scenario file and exit")

	fs.IntVar(&rc.substeps, "substeps", parameter.DefaultSubsteps, "sub-step cap per body pair")
	fs.StringVar(&rc.policy, "policy", "flat", "sub-step policy: flat or log")
	fs.IntVar(&rc.workers, "workers", 1, "force pass goroutines")
	fs.StringVar(&rc.timescale, "timescale", parameter.Timescales[parameter.DefaultTimescale].Name,
		"step length: "+timescaleNames())
	fs.StringVar(&rc.follow, "follow", "", "body to follow at start")
	fs.BoolVar(&rc.autofit, "autofit", false, "refit the camera periodically")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rc.set = visited(fs)
	return rc, nil
}

func timescaleNames() string {
	names := make([]string, len(parameter.Timescales))
	for i, ts := range parameter.Timescales {
		names[i] = ts.Name
	}
	return strings.Join(names, ", ")
}

func main() {
	rc, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if rc.printScene {
		fmt.Print(config.ExampleScenarioFile)
		return
	}

	if logFile := setupLogging(rc.debug); logFile != nil {
		defer logFile.Close()
	}

	st, err := buildSetup(rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbits: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %d bodies", len(st.bodies))

	if !rc.headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("Stdout is not a terminal, running headless")
		rc.headless = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if rc.headless {
		runBatch(ctx, rc, st)
		return
	}
	runInteractive(ctx, rc, st)
}

func serveMetrics(ctx context.Context, addr string, sim *engine.Simulation) *metrics.MetricsCollector {
	if addr == "" {
		return nil
	}
	mc := metrics.NewMetricsCollector(sim)
	core.Go(func() {
		if err := mc.ServeMetrics(ctx, addr); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	})
	return mc
}

func runBatch(ctx context.Context, rc *runConfig, st *setup) {
	opts := st.opts
	opts.Pixels = headlessPixels
	sim := engine.NewSimulation(st.bodies, opts)
	serveMetrics(ctx, rc.metrics, sim)

	var rec *plot.Recorder
	if rc.plotPath != "" {
		rec = plot.NewRecorder(rc.sample)
	}
	runHeadless(os.Stdout, sim, rc.steps, rec)

	if rec != nil {
		rec.Save(rc.plotPath, fmt.Sprintf("%d bodies, %d steps", len(st.bodies), rc.steps))
		plot.Render()
		fmt.Printf("Trajectories saved to %s\n", rc.plotPath)
	}
}

func runInteractive(ctx context.Context, rc *runConfig, st *setup) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	audioCfg := audio.LoadAudioConfig()
	sound := audio.NewSoundManager(audioCfg)
	if audioCfg.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	if rc.mute && !sound.IsMuted() {
		sound.ToggleMute()
	}
	defer sound.Cleanup()

	fe := newFrontEnd(screen, st, sound, nil)
	fe.metrics = serveMetrics(ctx, rc.metrics, fe.sim)
	fe.run()
}
