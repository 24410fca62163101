package body

import (
	"fmt"
	"strings"
)

// Color is an opaque 8-bit RGB display attribute
type Color struct {
	R, G, B uint8
}

// Named palette
var (
	White     = Color{255, 255, 255}
	Black     = Color{0, 0, 0}
	Red       = Color{255, 0, 0}
	Green     = Color{0, 255, 0}
	Blue      = Color{0, 0, 255}
	Purple    = Color{128, 0, 128}
	Orange    = Color{255, 70, 0}
	Yellow    = Color{255, 255, 0}
	Turquoise = Color{64, 208, 192}
	Gray8     = Color{128, 128, 128}
	Gray4     = Color{64, 64, 64}
	GrayC     = Color{192, 192, 192}
	Gold      = Color{255, 199, 0}
	Maroon    = Color{128, 0, 0}
)

var palette = map[string]Color{
	"white":     White,
	"black":     Black,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"purple":    Purple,
	"orange":    Orange,
	"yellow":    Yellow,
	"turquoise": Turquoise,
	"gray8":     Gray8,
	"gray4":     Gray4,
	"grayc":     GrayC,
	"gold":      Gold,
	"maroon":    Maroon,
}

// ParseColor accepts a palette name (case-insensitive) or #rrggbb; empty means white
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return White, nil
	}
	if c, ok := palette[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var c Color
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err == nil && n == 3 {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}
