package camera

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orbits/body"
	"github.com/lixenwraith/orbits/parameter"
)

var screen = image.Rect(0, 1, 80, 23)

func at(id int, xAU, yAU float64) *body.Body {
	return body.New(id, "", r2.Vec{X: xAU * parameter.AU, Y: yAU * parameter.AU}, r2.Vec{}, 1, 1, body.White)
}

func TestMapCorners(t *testing.T) {
	m := New(screen, r2.NewBox(-10, -5, 10, 5))

	assert.Equal(t, image.Point{X: 0, Y: 1}, m.Map(r2.Vec{X: -10, Y: -5}))
	assert.Equal(t, image.Point{X: 40, Y: 12}, m.Map(r2.Vec{}))
	// The max corner clamps to the last cell
	assert.Equal(t, image.Point{X: 79, Y: 22}, m.Map(r2.Vec{X: 10, Y: 5}))
	// Outside the bounds clamps to the edge
	assert.Equal(t, image.Point{X: 0, Y: 22}, m.Map(r2.Vec{X: -1e9, Y: 1e9}))
}

func TestRoundTrip(t *testing.T) {
	m := New(screen, r2.NewBox(-3, -2, 7, 4))
	ppu := m.PixelsPerUnit()

	for _, p := range []r2.Vec{{X: 0, Y: 0}, {X: -2.9, Y: 3.9}, {X: 6.5, Y: -1.2}, {X: 1.234, Y: 0.5}} {
		back := m.Unmap(m.Map(p))
		assert.InDelta(t, p.X, back.X, 1/ppu.X, "x of %v", p)
		assert.InDelta(t, p.Y, back.Y, 1/ppu.Y, "y of %v", p)
	}

	// Pixel -> AU -> pixel is exact
	for _, px := range []image.Point{{0, 1}, {17, 9}, {79, 22}} {
		assert.Equal(t, px, m.Map(m.Unmap(px)))
	}
}

func TestFitPadsBoundingBox(t *testing.T) {
	m := New(screen, r2.NewBox(0, 0, 1, 1))
	m.Fit([]*body.Body{at(0, -2, 1), at(1, 5, -3), at(2, 0, 0)})

	b := m.Bounds()
	assert.InDelta(t, -3, b.Min.X, 1e-12)
	assert.InDelta(t, 6, b.Max.X, 1e-12)
	assert.InDelta(t, -4, b.Min.Y, 1e-12)
	assert.InDelta(t, 2, b.Max.Y, 1e-12)

	before := m.Bounds()
	m.Fit(nil)
	assert.Equal(t, before, m.Bounds())
}

func TestFitSingleBodyIsNotDegenerate(t *testing.T) {
	m := New(screen, r2.NewBox(0, 0, 1, 1))
	m.Fit([]*body.Body{at(0, 4, 4)})

	assert.InDelta(t, 2, m.Range().X, 1e-12)
	assert.Equal(t, image.Point{X: 40, Y: 12}, m.Map(r2.Vec{X: 4, Y: 4}))
}

func TestFollowKeepsPixelStable(t *testing.T) {
	m := New(screen, r2.NewBox(-50, -50, 50, 50))
	b := at(0, 1, 0)
	b.Vel = r2.Vec{X: 3000, Y: 29780}

	m.Follow(b, 2)
	want := m.Map(b.PosAU())

	for step := 0; step < 365; step++ {
		b.Translate(r2.Scale(86400, b.Vel))
		m.Follow(b, 2)
		require.Equal(t, want, m.Map(b.PosAU()), "step %d", step)
	}
	assert.InDelta(t, 4, m.Range().X, 1e-9)
}

func TestFollowIgnoresNil(t *testing.T) {
	m := New(screen, r2.NewBox(-1, -1, 1, 1))
	m.Follow(nil, 3)
	assert.Equal(t, r2.NewBox(-1, -1, 1, 1), m.Bounds())
}

func TestZoomScalesAboutCenter(t *testing.T) {
	m := New(screen, r2.NewBox(0, 0, 10, 4))

	require.NoError(t, m.Zoom(2, 1, 1))
	assert.Equal(t, r2.Vec{X: 5, Y: 2}, m.Center())
	assert.Equal(t, r2.Vec{X: 20, Y: 8}, m.Range())

	require.NoError(t, m.Zoom(0.5, 1, 0.5))
	assert.Equal(t, r2.Vec{X: 10, Y: 2}, m.Range())

	for _, f := range []float64{0, -1, math.Inf(1), math.NaN()} {
		err := m.Zoom(f, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidZoom, "factor %g", f)
	}
	assert.Equal(t, r2.Vec{X: 10, Y: 2}, m.Range(), "rejected zoom leaves bounds alone")
}

func TestShift(t *testing.T) {
	m := New(screen, r2.NewBox(-1, -1, 1, 1))
	m.Shift(2, -3)
	assert.Equal(t, r2.NewBox(1, -4, 3, -2), m.Bounds())
	assert.Equal(t, r2.Vec{X: 2, Y: -3}, m.Center())

	m.Shift(math.NaN(), 0)
	assert.Equal(t, r2.Vec{X: 2, Y: -3}, m.Center())
}

func TestForceBounds(t *testing.T) {
	m := New(screen, r2.NewBox(0, 0, 1, 1))

	require.NoError(t, m.ForceBounds(50, -50, -50, 50))
	assert.Equal(t, r2.NewBox(-50, -50, 50, 50), m.Bounds())

	err := m.ForceBounds(0, math.Inf(1), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.Equal(t, r2.NewBox(-50, -50, 50, 50), m.Bounds())
}

func TestDegenerateBoundsStayFinite(t *testing.T) {
	m := New(screen, r2.NewBox(3, 3, 3, 3))

	ppu := m.PixelsPerUnit()
	assert.False(t, math.IsInf(ppu.X, 0) || math.IsNaN(ppu.X))
	assert.False(t, math.IsInf(ppu.Y, 0) || math.IsNaN(ppu.Y))
	assert.Greater(t, ppu.X, 0.0)
	assert.InDelta(t, parameter.MinBoundsExtent, m.Range().X, 1e-12)
	assert.InDelta(t, 3, m.Center().X, 1e-12)
	assert.InDelta(t, 3, m.Center().Y, 1e-12)

	// A single-axis collapse only widens that axis
	require.NoError(t, m.ForceBounds(-1, 1, 2, 2))
	assert.Equal(t, 2.0, m.Range().X)
	assert.InDelta(t, parameter.MinBoundsExtent, m.Range().Y, 1e-12)

	// Zooming in past the floor keeps the floor
	for i := 0; i < 200; i++ {
		require.NoError(t, m.Zoom(0.5, 1, 1))
	}
	assert.GreaterOrEqual(t, m.Range().X, parameter.MinBoundsExtent)
	assert.Greater(t, m.PixelsPerUnit().X, 0.0)

	// Zooming out stops at MaxBoundsExtent instead of overflowing
	require.NoError(t, m.ForceBounds(-50, 50, -50, 50))
	rejected := 0
	for i := 0; i < 2000; i++ {
		if err := m.Zoom(2, 1, 1); err != nil {
			require.ErrorIs(t, err, ErrInvalidZoom)
			rejected++
		}
	}
	assert.Equal(t, 2000-23, rejected)
	assertFiniteScale(t, m)
	assert.LessOrEqual(t, m.Range().X, parameter.MaxBoundsExtent)
	assert.Equal(t, image.Point{X: 40, Y: 12}, m.Map(r2.Vec{}))

	// Finite limits whose span overflows are rejected and leave the bounds alone
	before := m.Bounds()
	require.ErrorIs(t, m.ForceBounds(-1e308, 1e308, -1, 1), ErrInvalidBounds)
	require.ErrorIs(t, m.ForceBounds(-1, 1, 0, math.NaN()), ErrInvalidBounds)
	assert.Equal(t, before, m.Bounds())
	assertFiniteScale(t, m)

	// Shift and Follow past the limit are ignored
	m.Shift(math.MaxFloat64, 0)
	m.Follow(at(0, 1e300, 0), 1)
	assert.Equal(t, before, m.Bounds())
	assertFiniteScale(t, m)
}

func assertFiniteScale(t *testing.T, m *Mapper) {
	t.Helper()
	for _, v := range []float64{m.Range().X, m.Range().Y, m.PixelsPerUnit().X, m.PixelsPerUnit().Y} {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "non-finite %g", v)
		assert.Greater(t, v, 0.0)
	}
}

func TestResize(t *testing.T) {
	m := New(screen, r2.NewBox(-10, -10, 10, 10))
	m.Resize(image.Rect(0, 0, 40, 20))

	assert.Equal(t, image.Rect(0, 0, 40, 20), m.Pixels())
	assert.Equal(t, r2.Vec{X: 2, Y: 1}, m.PixelsPerUnit())
	assert.Equal(t, image.Point{X: 20, Y: 10}, m.Map(r2.Vec{}))

	// Empty extent collapses to the origin cell
	m.Resize(image.Rectangle{})
	assert.Equal(t, image.Point{}, m.Map(r2.Vec{X: 5, Y: 5}))
}

func TestVisible(t *testing.T) {
	m := New(screen, r2.NewBox(-1, -1, 1, 1))
	assert.True(t, m.Visible(r2.Vec{X: 0.5}))
	assert.False(t, m.Visible(r2.Vec{X: 1.5}))
}
