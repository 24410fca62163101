package parameter

// Layout
const (
	// BottomMargin reserves rows for the status line and key hints
	BottomMargin = 2

	// TopMargin reserves a row for the elapsed time line
	TopMargin = 1
)

// Body glyphs
const (
	// DefaultObjectSize is the initial drawn radius in cells (0 = single cell)
	DefaultObjectSize = 0

	// MaxObjectSize bounds the drawn radius in cells
	MaxObjectSize = 6

	// BodyRune is drawn for every cell covered by a body
	BodyRune = '●'

	// FollowMarkerRune brackets the followed body
	FollowMarkerRune = '+'
)

// Debug overlay
const (
	// DebugColumnWidth is the width of one body's column in the debug overlay
	DebugColumnWidth = 30
)
