package camera

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/vmath"
)

var (
	ErrInvalidZoom   = errors.New("camera: invalid zoom factor")
	ErrInvalidBounds = errors.New("camera: invalid bounds")
)

// Mapper projects AU coordinates onto a pixel rectangle
// Bounds and pixel extent are the only inputs; range, center and scale are derived by every mutator
type Mapper struct {
	bounds r2.Box          // AU
	pixels image.Rectangle // target cells

	span     r2.Vec // bounds size, AU
	center   r2.Vec // bounds center, AU
	ppu      r2.Vec // pixels per AU per axis
	pxCenter r2.Vec // pixel rectangle center
}

// New creates a mapper for the pixel rectangle showing bounds
func New(pixels image.Rectangle, bounds r2.Box) *Mapper {
	m := &Mapper{pixels: pixels.Canon(), bounds: bounds.Canon()}
	m.update()
	return m
}

// update widens degenerate axes and recomputes derived state
func (m *Mapper) update() {
	m.bounds = widen(m.bounds)
	m.span = m.bounds.Size()
	m.center = m.bounds.Center()

	w := float64(max(m.pixels.Dx(), 1))
	h := float64(max(m.pixels.Dy(), 1))
	m.ppu = r2.Vec{X: w / m.span.X, Y: h / m.span.Y}
	m.pxCenter = r2.Vec{
		X: float64(m.pixels.Min.X) + w/2,
		Y: float64(m.pixels.Min.Y) + h/2,
	}
}

// widen grows any axis narrower than MinBoundsExtent symmetrically about its center
func widen(b r2.Box) r2.Box {
	c := b.Center()
	half := parameter.MinBoundsExtent / 2
	if !(b.Max.X-b.Min.X >= parameter.MinBoundsExtent) {
		b.Min.X, b.Max.X = c.X-half, c.X+half
	}
	if !(b.Max.Y-b.Min.Y >= parameter.MinBoundsExtent) {
		b.Min.Y, b.Max.Y = c.Y-half, c.Y+half
	}
	return b
}

// usable reports whether b has finite corners within MaxBoundsExtent and a span that fits
func usable(b r2.Box) bool {
	lim := parameter.MaxBoundsExtent
	for _, v := range [4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		if !(math.Abs(v) <= lim) {
			return false
		}
	}
	sz := b.Size()
	return sz.X <= lim && sz.Y <= lim
}

// --- Policies ---

// Fit sets bounds to the bounding box of all bodies plus FitPadding on every side
// Non-finite positions are ignored; no-op when nothing is left or the box is unusable
func (m *Mapper) Fit(bodies []*body.Body) {
	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	n := 0
	for _, b := range bodies {
		p := b.PosAU()
		if !vmath.IsFinite(p) {
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		n++
	}
	if n == 0 {
		return
	}
	pad := r2.Vec{X: parameter.FitPadding, Y: parameter.FitPadding}
	next := r2.Box{Min: r2.Sub(lo, pad), Max: r2.Add(hi, pad)}
	if !usable(next) {
		return
	}
	m.bounds = next
	m.update()
}

// Follow centers bounds on b with padding AU each way
// No-op when the resulting box is unusable
func (m *Mapper) Follow(b *body.Body, padding float64) {
	if b == nil {
		return
	}
	c := b.PosAU()
	pad := r2.Vec{X: padding, Y: padding}
	next := r2.Box{Min: r2.Sub(c, pad), Max: r2.Add(c, pad)}.Canon()
	if !usable(next) {
		return
	}
	m.bounds = next
	m.update()
}

// --- Mutators ---

// Zoom scales the bounds about their center by factor*sx on X and factor*sy on Y
// factor > 1 widens the view (zoom out); a result wider than MaxBoundsExtent is rejected
func (m *Mapper) Zoom(factor, sx, sy float64) error {
	fx, fy := factor*sx, factor*sy
	if !(fx > 0) || !(fy > 0) || !vmath.Finite(fx) || !vmath.Finite(fy) {
		return fmt.Errorf("%w: %g x (%g, %g)", ErrInvalidZoom, factor, sx, sy)
	}
	next := m.bounds.Scale(r2.Vec{X: fx, Y: fy})
	if !usable(next) {
		return fmt.Errorf("%w: %g x (%g, %g) exceeds %g AU", ErrInvalidZoom, factor, sx, sy, parameter.MaxBoundsExtent)
	}
	m.bounds = next
	m.update()
	return nil
}

// Shift translates bounds by (dx, dy) AU
// No-op when the result leaves the usable range
func (m *Mapper) Shift(dx, dy float64) {
	next := m.bounds.Add(r2.Vec{X: dx, Y: dy})
	if !usable(next) {
		return
	}
	m.bounds = next
	m.update()
}

// ForceBounds replaces the bounds; swapped limits are canonicalized
// Non-finite limits and boxes beyond MaxBoundsExtent are rejected
func (m *Mapper) ForceBounds(xmin, xmax, ymin, ymax float64) error {
	next := r2.NewBox(xmin, ymin, xmax, ymax)
	if !usable(next) {
		return fmt.Errorf("%w: x[%g, %g] y[%g, %g]", ErrInvalidBounds, xmin, xmax, ymin, ymax)
	}
	m.bounds = next
	m.update()
	return nil
}

// Resize sets a new pixel extent, keeping the bounds
func (m *Mapper) Resize(pixels image.Rectangle) {
	m.pixels = pixels.Canon()
	m.update()
}

// --- Mapping ---

// Map converts an AU position into a pixel, floored and clamped to the extent
func (m *Mapper) Map(p r2.Vec) image.Point {
	x := (p.X-m.center.X)*m.ppu.X + m.pxCenter.X
	y := (p.Y-m.center.Y)*m.ppu.Y + m.pxCenter.Y
	return image.Point{
		X: clampAxis(x, m.pixels.Min.X, m.pixels.Max.X),
		Y: clampAxis(y, m.pixels.Min.Y, m.pixels.Max.Y),
	}
}

// Unmap converts a pixel back into the AU position of its origin corner
func (m *Mapper) Unmap(px image.Point) r2.Vec {
	return r2.Vec{
		X: (float64(px.X)-m.pxCenter.X)/m.ppu.X + m.center.X,
		Y: (float64(px.Y)-m.pxCenter.Y)/m.ppu.Y + m.center.Y,
	}
}

// Visible reports whether p lies inside the bounds
func (m *Mapper) Visible(p r2.Vec) bool {
	return m.bounds.Contains(p)
}

// snap absorbs rounding noise so a point sitting on a cell edge lands in the same cell every tick
const snap = 1e-6

// clampAxis floors v and keeps it within [lo, hi), collapsing to lo for an empty extent
func clampAxis(v float64, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if math.IsNaN(v) {
		return lo
	}
	v = vmath.Clamp(math.Floor(v+snap), float64(lo), float64(hi-1))
	return int(v)
}

// --- Accessors ---

// Bounds returns the current AU bounds
func (m *Mapper) Bounds() r2.Box { return m.bounds }

// Center returns the bounds center in AU
func (m *Mapper) Center() r2.Vec { return m.center }

// Range returns the bounds size in AU
func (m *Mapper) Range() r2.Vec { return m.span }

// PixelsPerUnit returns the per-axis scale, always finite and positive
func (m *Mapper) PixelsPerUnit() r2.Vec { return m.ppu }

// Pixels returns the pixel extent
func (m *Mapper) Pixels() image.Rectangle { return m.pixels }
