package render

import (
	"image"

	"github.com/lixenwraith/orbits/parameter"
)

// ViewRect returns the body area of a width x height screen, between the top and bottom margins
// Screens too short for the margins get an empty rectangle
func ViewRect(width, height int) image.Rectangle {
	top := parameter.TopMargin
	bottom := height - parameter.BottomMargin
	if width < 0 {
		width = 0
	}
	if bottom < top {
		bottom = top
	}
	return image.Rect(0, top, width, bottom)
}
