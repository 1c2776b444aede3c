// Package coords provides the page-space geometry primitives used by
// layout and widget placement.
package coords

// Rectangle is an axis-aligned box anchored at its lower-left corner.
type Rectangle struct {
	X, Y, W, H float64
}

// Corners returns [llx lly urx ury], the order annotation rectangles use.
func (r Rectangle) Corners() [4]float64 {
	return [4]float64{r.X, r.Y, r.X + r.W, r.Y + r.H}
}
