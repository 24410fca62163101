package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/render"
)

const (
	screenW = 100
	screenH = 43
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	scr.SetSize(screenW, screenH)
	t.Cleanup(scr.Fini)
	return scr
}

func newSim(t *testing.T, mutate func(*engine.Options)) *engine.Simulation {
	t.Helper()
	bodies, err := body.Build([]body.Record{
		{Name: "Sun", Mass: parameter.SolarMass, Radius: 6.96e8, Color: body.Yellow},
		{Name: "Earth", DistanceAU: 1, Velocity: 29780, Mass: 5.97e24, Radius: 6.37e6, Color: body.Blue, Reference: "Sun"},
	})
	require.NoError(t, err)

	opts := engine.DefaultOptions()
	opts.Pixels = render.ViewRect(screenW, screenH)
	if mutate != nil {
		mutate(&opts)
	}
	return engine.NewSimulation(bodies, opts)
}

func newPipeline(scr tcell.Screen, sim *engine.Simulation) *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator(scr)
	o.Register(NewBoundsRenderer(), render.PriorityGrid)
	o.Register(NewBodiesRenderer(), render.PriorityBodies)
	o.Register(NewFollowMarkerRenderer(), render.PriorityMarker)
	o.Register(NewHeaderRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewDebugOverlayRenderer(sim), render.PriorityDebug)
	return o
}

func runeAt(scr tcell.Screen, x, y int) rune {
	r, _, _, _ := scr.GetContent(x, y)
	return r
}

func rowText(scr tcell.Screen, y int) string {
	w, _ := scr.Size()
	rs := make([]rune, w)
	for x := range rs {
		rs[x] = runeAt(scr, x, y)
	}
	return string(rs)
}

func TestBodiesDrawnAtMappedCells(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, nil)
	o := newPipeline(scr, sim)

	ctx := render.NewRenderContext(sim, screenW, screenH)
	o.RenderFrame(ctx)

	for _, s := range ctx.Sprites {
		assert.Equal(t, parameter.BodyRune, runeAt(scr, s.X, s.Y), "body %s", s.Name)
		_, _, style, _ := scr.GetContent(s.X, s.Y)
		fg, _, _ := style.Decompose()
		if s.Name == "Sun" {
			assert.Equal(t, render.BodyColor(body.Yellow), fg)
		}
	}

	// Sun at the view center
	assert.Equal(t, 50, ctx.Sprites[0].X)
	assert.Equal(t, 21, ctx.Sprites[0].Y)
}

func TestBodyRadiusDrawsDisk(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, nil)
	sim.ObjectSizeUp()
	sim.ObjectSizeUp()
	o := newPipeline(scr, sim)

	ctx := render.NewRenderContext(sim, screenW, screenH)
	o.RenderFrame(ctx)

	sun := ctx.Sprites[0]
	require.Equal(t, 2, sun.Radius)
	assert.Equal(t, parameter.BodyRune, runeAt(scr, sun.X-2, sun.Y))
	assert.Equal(t, parameter.BodyRune, runeAt(scr, sun.X+2, sun.Y))
	assert.Equal(t, parameter.BodyRune, runeAt(scr, sun.X, sun.Y-1))
	assert.Equal(t, parameter.BodyRune, runeAt(scr, sun.X, sun.Y+1))
	assert.NotEqual(t, parameter.BodyRune, runeAt(scr, sun.X+2, sun.Y+1))
}

func TestBodiesClippedToView(t *testing.T) {
	scr := newScreen(t)
	scr.Clear()

	ctx := render.RenderContext{
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		View:         render.ViewRect(screenW, screenH),
		Sprites:      []engine.Sprite{{X: 10, Y: 1, Radius: 4, Color: body.White}},
	}
	NewBodiesRenderer().Render(ctx, scr)

	// Row 0 belongs to the header
	assert.Equal(t, ' ', runeAt(scr, 10, 0))
	assert.Equal(t, parameter.BodyRune, runeAt(scr, 10, 1))
	assert.Equal(t, parameter.BodyRune, runeAt(scr, 10, 3))
}

func TestFollowMarkerBracketsFollowedBody(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, func(o *engine.Options) { o.Follow = "Earth" })
	o := newPipeline(scr, sim)

	ctx := render.NewRenderContext(sim, screenW, screenH)
	o.RenderFrame(ctx)

	earth := ctx.Sprites[1]
	require.True(t, earth.Followed)
	assert.Equal(t, parameter.FollowMarkerRune, runeAt(scr, earth.X-1, earth.Y))
	assert.Equal(t, parameter.FollowMarkerRune, runeAt(scr, earth.X+1, earth.Y))
	assert.Contains(t, rowText(scr, earth.Y-1), "Earth")
	assert.Contains(t, rowText(scr, 0), "follow: Earth")
}

func TestBoundsLabelsOnEdges(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, nil)
	o := newPipeline(scr, sim)

	o.RenderFrame(render.NewRenderContext(sim, screenW, screenH))

	view := render.ViewRect(screenW, screenH)
	midY := view.Min.Y + view.Dy()/2
	row := []rune(rowText(scr, midY))
	assert.Equal(t, "-50", string(row[:3]))
	assert.Equal(t, "50", string(row[screenW-2:]))

	assert.Contains(t, rowText(scr, view.Min.Y), "-50")
	assert.Contains(t, rowText(scr, view.Max.Y-1), "50")
}

func TestHeaderAndStatusBar(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, nil)
	o := newPipeline(scr, sim)

	sim.TogglePause()
	ctx := render.NewRenderContext(sim, screenW, screenH)
	ctx.Muted = true
	o.RenderFrame(ctx)

	header := rowText(scr, 0)
	assert.Contains(t, header, "Day 0.0")
	assert.Contains(t, header, "step: day")
	assert.Contains(t, header, "flat")
	assert.Contains(t, header, "PAUSED MUTE")

	assert.Contains(t, rowText(scr, screenH-2), "bodies: 2")
	assert.Contains(t, rowText(scr, screenH-1), KeyHints)

	ctx.Status = "unknown key"
	o.RenderFrame(ctx)
	assert.Contains(t, rowText(scr, screenH-1), "unknown key")
}

func TestDebugOverlayFollowsSimulationFlag(t *testing.T) {
	scr := newScreen(t)
	sim := newSim(t, nil)
	o := newPipeline(scr, sim)

	o.RenderFrame(render.NewRenderContext(sim, screenW, screenH))
	assert.NotContains(t, rowText(scr, 2), "x  ")

	sim.ToggleDebug()
	ctx := render.NewRenderContext(sim, screenW, screenH)
	require.Len(t, ctx.Debug, 2)
	o.RenderFrame(ctx)

	first := []rune(rowText(scr, 1))
	assert.Equal(t, "Sun", string(first[:3]))
	assert.Equal(t, "Earth", string(first[parameter.DebugColumnWidth:parameter.DebugColumnWidth+5]))
}

func TestFormatAU(t *testing.T) {
	assert.Equal(t, "-50", FormatAU(-50))
	assert.Equal(t, "1.523", FormatAU(1.5234))
}
