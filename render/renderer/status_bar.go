package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/render"
)

// KeyHints is the default help line shown when no status message is pending
const KeyHints = "2468 pan  /* zoom  5 fit  [] follow  space pause  0 step  -+ time  79 substeps  d debug  q quit"

// HeaderRenderer draws the elapsed time and the run parameters on the top row
type HeaderRenderer struct{}

// NewHeaderRenderer creates the top row renderer
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{}
}

// Render implements SystemRenderer
func (r *HeaderRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	if ctx.ScreenHeight < 1 {
		return
	}
	snap := ctx.Snapshot
	style := render.DefaultStyle.Foreground(render.RgbStatusBar)

	x := render.DrawText(scr, 0, 0, fmt.Sprintf("Day %.1f", snap.ElapsedDays), style.Bold(true))
	x = render.DrawText(scr, x, 0, fmt.Sprintf("  step: %s", snap.Timescale), style)
	x = render.DrawText(scr, x, 0, fmt.Sprintf("  substeps: %d %s", snap.Substeps, snap.Policy), style)
	if snap.Follow != "" {
		render.DrawText(scr, x, 0, "  follow: "+snap.Follow, style.Foreground(render.RgbMarker))
	}

	var flags []string
	if snap.Paused {
		flags = append(flags, "PAUSED")
	}
	if snap.AutoFit {
		flags = append(flags, "AUTOFIT")
	}
	if ctx.Muted {
		flags = append(flags, "MUTE")
	}
	if len(flags) > 0 {
		render.DrawTextRight(scr, 0, 0, strings.Join(flags, " "), style.Reverse(true))
	}
}

// StatusBarRenderer draws counters on the first bottom row and the status message or key hints on the last
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, scr tcell.Screen) {
	statusY := ctx.View.Max.Y
	// Bounds check: skip if status row outside screen
	if statusY >= ctx.ScreenHeight || statusY < 1 {
		return
	}
	snap := ctx.Snapshot
	style := render.DefaultStyle.Foreground(render.RgbStatusBar)

	line := fmt.Sprintf("bodies: %d  steps: %d  pairs: %d  clamped: %d  drift: %.2e",
		snap.Bodies, snap.Steps, snap.LastPairs, snap.Clamped, snap.MomentumDrift)
	render.DrawText(scr, 0, statusY, line, style)

	hintY := statusY + 1
	if hintY >= ctx.ScreenHeight {
		return
	}
	if ctx.Status != "" {
		render.DrawText(scr, 0, hintY, ctx.Status, style.Foreground(render.RgbWarning))
		return
	}
	render.DrawText(scr, 0, hintY, KeyHints, style.Foreground(render.RgbHint))
}
