package render

import (
	"image"

	"github.com/lixenwraith/orbits/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Sprites  []engine.Sprite
	Snapshot engine.Snapshot

	// Debug holds one column of lines per body, nil when the overlay is off
	Debug [][]string

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// View is the pixel rectangle bodies are mapped into, margins excluded
	View image.Rectangle

	Muted bool

	// Status is a transient one-line message (last error, last action)
	Status string
}

// NewRenderContext captures one frame from the simulation
func NewRenderContext(sim *engine.Simulation, width, height int) RenderContext {
	sprites, snap := sim.Frame()
	ctx := RenderContext{
		Sprites:      sprites,
		Snapshot:     snap,
		ScreenWidth:  width,
		ScreenHeight: height,
		View:         ViewRect(width, height),
	}
	if snap.Debug {
		ctx.Debug = sim.DebugLines()
	}
	return ctx
}

// InView reports whether a screen cell lies in the body area
func (rc *RenderContext) InView(x, y int) bool {
	return image.Pt(x, y).In(rc.View)
}
