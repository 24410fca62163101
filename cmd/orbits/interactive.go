package main

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/audio"
	"github.com/lixenwraith/orbits/core"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/input"
	"github.com/lixenwraith/orbits/metrics"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/render"
	"github.com/lixenwraith/orbits/render/renderer"
)

// frontEnd funnels key intents and scheduler ticks through one goroutine
type frontEnd struct {
	screen  tcell.Screen
	sim     *engine.Simulation
	keys    *input.KeyTable
	sound   *audio.SoundManager
	metrics *metrics.MetricsCollector // nil when not exported

	orchestrator *render.RenderOrchestrator
	paused       atomic.Bool
	status       string
}

func newFrontEnd(screen tcell.Screen, st *setup, sound *audio.SoundManager, mc *metrics.MetricsCollector) *frontEnd {
	w, h := screen.Size()
	opts := st.opts
	opts.Pixels = render.ViewRect(w, h)
	sim := engine.NewSimulation(st.bodies, opts)

	fe := &frontEnd{
		screen:       screen,
		sim:          sim,
		keys:         st.keys,
		sound:        sound,
		metrics:      mc,
		orchestrator: render.NewRenderOrchestrator(screen),
	}

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	for _, def := range []rendererDef{
		{renderer.NewBoundsRenderer(), render.PriorityGrid},
		{renderer.NewBodiesRenderer(), render.PriorityBodies},
		{renderer.NewFollowMarkerRenderer(), render.PriorityMarker},
		{renderer.NewHeaderRenderer(), render.PriorityUI},
		{renderer.NewStatusBarRenderer(), render.PriorityUI},
		{renderer.NewDebugOverlayRenderer(sim), render.PriorityDebug},
	} {
		fe.orchestrator.Register(def.renderer, def.priority)
	}
	return fe
}

// run drives the loop until quit is requested or the event source closes
func (fe *frontEnd) run() {
	events := make(chan tcell.Event, parameter.InputQueueSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { fe.screen.ChannelEvents(events, quit) })

	sched := engine.NewScheduler(parameter.FrameInterval, &fe.paused)
	sched.Start()
	defer sched.Stop()

	fe.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if fe.handleEvent(ev) {
				return
			}
			fe.draw()

		case <-sched.C():
			start := time.Now()
			fe.sim.Tick()
			if fe.metrics != nil {
				fe.metrics.RecordTick(time.Since(start))
			}
			fe.draw()
		}
	}
}

// handleEvent applies one terminal event, returns true to quit
func (fe *frontEnd) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		fe.orchestrator.Resize()
		w, h := fe.screen.Size()
		fe.sim.Resize(render.ViewRect(w, h))
		log.Printf("Resized to %dx%d", w, h)
	case *tcell.EventKey:
		return fe.handleKey(ev)
	}
	return false
}

// handleKey maps a key to an intent and applies it
func (fe *frontEnd) handleKey(ev *tcell.EventKey) bool {
	in, ok := fe.keys.Lookup(ev)
	if !ok {
		fe.status = fmt.Sprintf("unbound key: %s", ev.Name())
		fe.sound.Play(audio.CueError)
		return false
	}
	fe.status = ""

	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		muted := fe.sound.ToggleMute()
		log.Printf("Audio muted: %v", muted)
		return false
	}

	res := input.Dispatch(fe.sim, in)
	if !res.Handled {
		return false
	}
	if fe.metrics != nil {
		fe.metrics.RecordControl(in.Type.String(), res.Changed)
	}
	fe.sound.Play(cueFor(in, res))
	fe.paused.Store(fe.sim.Snapshot().Paused)
	return false
}

func (fe *frontEnd) draw() {
	w, h := fe.orchestrator.Size()
	ctx := render.NewRenderContext(fe.sim, w, h)
	ctx.Muted = fe.sound.IsMuted()
	ctx.Status = fe.status
	fe.orchestrator.RenderFrame(ctx)
}
