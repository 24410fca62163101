package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/render"
)

// BoundsRenderer prints the camera bounds in AU on the edges of the view:
// x-min at the left, x-max at the right, y-min at the top and y-max at the bottom
type BoundsRenderer struct{}

// NewBoundsRenderer creates a bounds label renderer
func NewBoundsRenderer() *BoundsRenderer {
	return &BoundsRenderer{}
}

// Render implements SystemRenderer
func (r *BoundsRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	view := ctx.View
	if view.Empty() {
		return
	}
	style := render.DefaultStyle.Foreground(render.RgbBounds).Dim(true)
	b := ctx.Snapshot.Bounds

	midX := view.Min.X + view.Dx()/2
	midY := view.Min.Y + view.Dy()/2

	render.DrawText(scr, view.Min.X, midY, FormatAU(b.Min.X), style)

	xmax := FormatAU(b.Max.X)
	render.DrawText(scr, view.Max.X-len(xmax), midY, xmax, style)

	ymin := FormatAU(b.Min.Y)
	render.DrawText(scr, midX-len(ymin)/2, view.Min.Y, ymin, style)

	ymax := FormatAU(b.Max.Y)
	render.DrawText(scr, midX-len(ymax)/2, view.Max.Y-1, ymax, style)
}

// FormatAU renders a coordinate for the bounds labels
func FormatAU(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
