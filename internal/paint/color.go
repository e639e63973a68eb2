package paint

import (
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor reads any CSS color: named colors, "transparent", hex forms and
// the rgb(), rgba(), hsl(), hsla() and hwb() functions, with or without
// commas and percentages.
func ParseColor(s string) (color.NRGBA, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
