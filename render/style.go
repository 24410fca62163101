package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbits/body"
)

// Fixed UI colors
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbHint       = tcell.NewRGBColor(140, 140, 140)
	RgbBounds     = tcell.NewRGBColor(100, 150, 255)
	RgbMarker     = tcell.NewRGBColor(255, 255, 0)
	RgbWarning    = tcell.NewRGBColor(255, 80, 80)
	RgbDebug      = tcell.NewRGBColor(180, 180, 180)
)

// DefaultStyle is the cleared cell style
var DefaultStyle = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)

// BodyColor converts a body color to a terminal color
func BodyColor(c body.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawText writes s starting at (x, y), clipped to the screen width
// Returns the column after the last written rune
func DrawText(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := scr.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// DrawTextRight writes s so that its last rune lands at column w-1-pad
func DrawTextRight(scr tcell.Screen, y, pad int, s string, style tcell.Style) {
	w, _ := scr.Size()
	DrawText(scr, w-pad-len([]rune(s)), y, s, style)
}
