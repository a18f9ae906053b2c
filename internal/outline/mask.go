package outline

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Mask rasterizes the outline into a width x height selection mask.
// Pixels whose centers fall inside the polygon through the outline's pixel
// centers are opaque, as are the outline pixels themselves; everything else
// is transparent.
func Mask(o Outline, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 || len(o.Points) == 0 {
		return mask
	}

	if len(o.Points) >= 3 {
		z := vector.NewRasterizer(width, height)
		z.DrawOp = draw.Src
		for i, p := range o.Points {
			c := p.Center()
			if i == 0 {
				z.MoveTo(float32(c.X), float32(c.Y))
			} else {
				z.LineTo(float32(c.X), float32(c.Y))
			}
		}
		z.ClosePath()
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

		// coverage is anti-aliased; a selection is binary
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}

	for _, p := range o.Points {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			mask.Pix[mask.PixOffset(p.X, p.Y)] = 0xff
		}
	}
	return mask
}

// MaskArea counts the opaque pixels of a mask.
func MaskArea(mask *image.Alpha) int {
	n := 0
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}
