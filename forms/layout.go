package forms

import "github.com/vellumpdf/vellum/coords"

// Leading multiplier applied to the font size when sizing a line box.
const leading = 1.2

// MinFieldWidth is the floor applied to a field's usable width.
const MinFieldWidth = 64.0

// ContentBox maps available space to the line box a single-line field
// occupies: top-aligned within the available space, one leaded line tall,
// never narrower than MinFieldWidth. Pure; callable on every layout pass.
func ContentBox(available coords.Rectangle, fontSize float64) coords.Rectangle {
	return contentBoxLines(available, fontSize, 1)
}

func contentBoxLines(available coords.Rectangle, fontSize float64, lines int) coords.Rectangle {
	lineHeight := fontSize * leading
	height := lineHeight * float64(lines)
	width := available.W
	if width < MinFieldWidth {
		width = MinFieldWidth
	}
	return coords.Rectangle{
		X: available.X,
		Y: available.Y + available.H - height,
		W: width,
		H: height,
	}
}
