package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/engine"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/render"
)

// DebugOverlayRenderer prints one column of state per body over the view
type DebugOverlayRenderer struct {
	sim *engine.Simulation
}

// NewDebugOverlayRenderer creates a debug overlay bound to sim's debug flag
func NewDebugOverlayRenderer(sim *engine.Simulation) *DebugOverlayRenderer {
	return &DebugOverlayRenderer{sim: sim}
}

// IsVisible implements VisibilityToggle
func (r *DebugOverlayRenderer) IsVisible() bool {
	return r.sim.Snapshot().Debug
}

// Render implements SystemRenderer
func (r *DebugOverlayRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	style := render.DefaultStyle.Foreground(render.RgbDebug)
	for i, col := range ctx.Debug {
		x := ctx.View.Min.X + i*parameter.DebugColumnWidth
		if x >= ctx.View.Max.X {
			return
		}
		for j, line := range col {
			y := ctx.View.Min.Y + j
			if y >= ctx.View.Max.Y {
				break
			}
			// Keep a one-column gap between neighbours
			if w := parameter.DebugColumnWidth - 1; len(line) > w {
				line = line[:w]
			}
			render.DrawText(scr, x, y, line, style)
		}
	}
}
