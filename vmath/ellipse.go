package vmath

// Ellipse utilities for drawing bodies on terminal cells
// Cells are roughly twice as tall as wide, so a round disk of horizontal radius r spans r/2 rows

// CellRadii returns the horizontal and vertical cell radii of a disk with horizontal radius r
func CellRadii(r int) (rx, ry int) {
	if r <= 0 {
		return 0, 0
	}
	return r, r / 2
}

// EllipseContains reports whether offset (dx, dy) lies inside or on the ellipse with radii rx, ry
// A zero radius collapses that axis to a line through the center
func EllipseContains(dx, dy, rx, ry int) bool {
	switch {
	case rx <= 0 && ry <= 0:
		return dx == 0 && dy == 0
	case ry <= 0:
		return dy == 0 && dx*dx <= rx*rx
	case rx <= 0:
		return dx == 0 && dy*dy <= ry*ry
	}
	rxSq, rySq := int64(rx*rx), int64(ry*ry)
	return int64(dx*dx)*rySq+int64(dy*dy)*rxSq <= rxSq*rySq
}
