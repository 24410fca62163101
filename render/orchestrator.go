package render

import (
	"slices"
	"sort"

	"github.com/gdamore/tcell/v2"
)

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator draws registered renderers to one screen in priority order
type RenderOrchestrator struct {
	screen tcell.Screen
	layers []layer
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen: screen,
		layers: make([]layer, 0, 8),
	}
}

// Register adds r at priority; renderers sharing a priority draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	pos := sort.Search(len(o.layers), func(i int) bool {
		return o.layers[i].priority > priority
	})
	o.layers = slices.Insert(o.layers, pos, layer{renderer: r, priority: priority})
}

// Size returns the current screen dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.screen.Size()
}

// Resize resyncs the terminal after a size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame clears the screen, runs every visible renderer, then shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.screen.SetStyle(DefaultStyle)
	o.screen.Clear()

	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
