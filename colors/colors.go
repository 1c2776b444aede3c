// Package colors provides the minimal color support widget synthesis
// needs: any color can report itself as normalized RGB components.
package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is anything that can express itself as RGB with components in
// [0, 1].
type Color interface {
	ToRGB() (r, g, b float64)
}

// RGB is a color already expressed as normalized components.
type RGB struct {
	R, G, B float64
}

func (c RGB) ToRGB() (float64, float64, float64) { return c.R, c.G, c.B }

// Hex parses a 6-digit hex color such as "000000" or "#808080".
func Hex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// MustHex is Hex for compile-time constants.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	Black = RGB{}
	Gray  = MustHex("808080")
	White = RGB{R: 1, G: 1, B: 1}
)
