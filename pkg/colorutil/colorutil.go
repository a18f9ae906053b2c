// Package colorutil provides shared color utilities for the wand tracer.
package colorutil

import (
	"image/color"
)

// Overlay colors.
var (
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Gray maps a color onto a 0-255 gray level using Rec. 601 luma weights.
func Gray(c color.Color) float64 {
	r, g, b, _ := c.RGBA() // channel values in range [0, 0xFFFF]
	gray := float64(r)*0.2989 + float64(g)*0.5870 + float64(b)*0.1140
	if gray > 0xFFFF {
		gray = 0xFFFF
	}
	return gray / 0x101
}
