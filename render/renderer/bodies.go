package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/render"
	"github.com/lixenwraith/orbits/vmath"
)

// BodiesRenderer draws every body as a disk of its sprite radius at its mapped cell
type BodiesRenderer struct{}

// NewBodiesRenderer creates a body renderer
func NewBodiesRenderer() *BodiesRenderer {
	return &BodiesRenderer{}
}

// Render implements SystemRenderer
func (r *BodiesRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	for _, s := range ctx.Sprites {
		style := render.DefaultStyle.Foreground(render.BodyColor(s.Color))
		rx, ry := vmath.CellRadii(s.Radius)
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				if !vmath.EllipseContains(dx, dy, rx, ry) {
					continue
				}
				x, y := s.X+dx, s.Y+dy
				if !ctx.InView(x, y) {
					continue
				}
				scr.SetContent(x, y, parameter.BodyRune, nil, style)
			}
		}
	}
}

// FollowMarkerRenderer brackets the followed body and prints its name
type FollowMarkerRenderer struct{}

// NewFollowMarkerRenderer creates a follow marker renderer
func NewFollowMarkerRenderer() *FollowMarkerRenderer {
	return &FollowMarkerRenderer{}
}

// Render implements SystemRenderer
func (r *FollowMarkerRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	style := render.DefaultStyle.Foreground(render.RgbMarker).Bold(true)
	for _, s := range ctx.Sprites {
		if !s.Followed {
			continue
		}
		rx, _ := vmath.CellRadii(s.Radius)
		left, right := s.X-rx-1, s.X+rx+1
		if ctx.InView(left, s.Y) {
			scr.SetContent(left, s.Y, parameter.FollowMarkerRune, nil, style)
		}
		if ctx.InView(right, s.Y) {
			scr.SetContent(right, s.Y, parameter.FollowMarkerRune, nil, style)
		}

		// Label one row above, clipped to the view
		labelY := s.Y - 1
		if labelY >= ctx.View.Min.Y {
			x := right + 1
			for _, ch := range s.Name {
				if !ctx.InView(x, labelY) {
					break
				}
				scr.SetContent(x, labelY, ch, nil, style)
				x++
			}
		}
		return
	}
}
