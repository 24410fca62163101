// Package plot records body trajectories during headless runs and exports them as a matplotlib figure
package plot

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/lixenwraith/orbits/body"
)

// Recorder samples body positions in AU every N steps
type Recorder struct {
	every  uint64
	names  []string
	colors []string
	xs, ys [][]float64
}

// NewRecorder samples every `every` steps; values below 1 sample every step
func NewRecorder(every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{every: uint64(every)}
}

// Observe matches the engine.Simulation.Run callback
func (r *Recorder) Observe(step uint64, bodies []*body.Body) {
	if r.names == nil {
		r.names = make([]string, len(bodies))
		r.colors = make([]string, len(bodies))
		r.xs = make([][]float64, len(bodies))
		r.ys = make([][]float64, len(bodies))
		for i, b := range bodies {
			r.names[i] = b.Name
			r.colors[i] = LineColor(b.Color)
		}
	}
	if step%r.every != 0 {
		return
	}
	for i, b := range bodies {
		if i >= len(r.xs) {
			break
		}
		p := b.PosAU()
		r.xs[i] = append(r.xs[i], p.X)
		r.ys[i] = append(r.ys[i], p.Y)
	}
}

// Samples returns the number of recorded samples per body
func (r *Recorder) Samples() int {
	if len(r.xs) == 0 {
		return 0
	}
	return len(r.xs[0])
}

// Track returns the recorded AU coordinates of body i
func (r *Recorder) Track(i int) (xs, ys []float64) {
	return r.xs[i], r.ys[i]
}

// Extent returns the half-width of the smallest origin-centered square holding every sample
func (r *Recorder) Extent() float64 {
	ext := 0.0
	for i := range r.xs {
		for j := range r.xs[i] {
			ext = math.Max(ext, math.Max(math.Abs(r.xs[i][j]), math.Abs(r.ys[i][j])))
		}
	}
	if ext == 0 {
		ext = 1
	}
	return ext * 1.05
}

// Save queues the trajectory figure for fname; plt.Execute renders every queued figure
func (r *Recorder) Save(fname, title string) {
	plt.Figure(plt.FigSize(8, 8))
	for i := range r.xs {
		xs, ys := r.xs[i], r.ys[i]
		if len(xs) == 0 {
			continue
		}
		plt.Plot(xs, ys, plt.LW(1), plt.C(r.colors[i]))
		last := len(xs) - 1
		plt.Plot([]float64{xs[last]}, []float64{ys[last]}, "o", plt.C(r.colors[i]))
	}

	ext := r.Extent()
	plt.Title(title)
	plt.XLabel(`$x$ [AU]`, plt.FontSize(16))
	plt.YLabel(`$y$ [AU]`, plt.FontSize(16))
	plt.XLim(-ext, +ext)
	plt.YLim(-ext, +ext)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}

// Render runs the queued plotting commands
func Render() {
	plt.Execute()
}

// LineColor returns a matplotlib color for c, darkening near-white so lines show on a white figure
func LineColor(c body.Color) string {
	if int(c.R)+int(c.G)+int(c.B) > 3*230 {
		return "#404040"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
