// Package wand selects a region of an image from a single click by casting
// rays outward until the gray level changes, then tracing the ray ends into
// a 4-connected outline and mask.
package wand

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"

	"gonum.org/v1/gonum/stat"

	"wand-tracer/internal/outline"
	"wand-tracer/internal/polar"
	"wand-tracer/pkg/colorutil"
	"wand-tracer/pkg/geometry"
)

// ErrOutsideImage is returned when the click does not hit the image.
var ErrOutsideImage = errors.New("click outside image")

// Selection holds a traced wand selection. Coordinates are relative to
// the image's Bounds().Min.
type Selection struct {
	Center  geometry.PointInt // The clicked pixel
	Samples []outline.Sample  // Edge distance per ray
	Outline outline.Outline   // Closed 4-connected boundary
	Mask    *image.Alpha      // Filled selection

	MeanRadius  float64 // Mean edge distance over all rays
	StdDev      float64 // Standard deviation of the edge distances
	Circularity float64 // StdDev / MeanRadius; 0 for a perfect circle
	IsCircle    bool    // Circularity below Params.CircularityMax
}

// Select traces the region around pixel (x, y).
//
// Each ray walks outward from the click and stops at the first pixel whose
// gray level differs from the clicked pixel by more than the tolerance, or
// at the image border, or at MaxRadius.
func Select(img image.Image, x, y int, params Params) (Selection, error) {
	if err := params.Validate(); err != nil {
		return Selection{}, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return Selection{}, fmt.Errorf("empty image: %w", ErrOutsideImage)
	}
	if !(image.Point{X: x, Y: y}.In(bounds)) {
		return Selection{}, fmt.Errorf("click (%d,%d) not in %v: %w", x, y, bounds, ErrOutsideImage)
	}

	ref := colorutil.Gray(img.At(x, y))
	if params.Verbose {
		log.Printf("[Wand] Select at (%d,%d): gray=%.1f, %d rays, tolerance %.1f",
			x, y, ref, params.Rays, params.Tolerance)
	}

	samples := outline.Sweep(params.Rays, func(theta float64) float64 {
		return EdgeRadius(img, x, y, theta, ref, params)
	})
	radii := make([]float64, len(samples))
	for i, s := range samples {
		radii[i] = s.R
	}

	local := image.Point{X: x, Y: y}.Sub(bounds.Min)
	conv := polar.Converter{
		CenterX: local.X,
		CenterY: local.Y,
		Bounds:  polar.Bounds{MaxX: bounds.Dx() - 1, MaxY: bounds.Dy() - 1},
		Epsilon: params.Epsilon,
	}
	o, err := outline.Trace(conv, samples, params.MaxDepth)
	if err != nil {
		return Selection{}, fmt.Errorf("trace outline: %w", err)
	}

	mean, std := stat.MeanStdDev(radii, nil)
	var cv float64
	if mean > 0 {
		cv = std / mean
	}

	sel := Selection{
		Center:      geometry.PointInt{X: local.X, Y: local.Y},
		Samples:     samples,
		Outline:     o,
		Mask:        outline.Mask(o, bounds.Dx(), bounds.Dy()),
		MeanRadius:  mean,
		StdDev:      std,
		Circularity: cv,
		IsCircle:    cv < params.CircularityMax,
	}

	if params.Verbose {
		log.Printf("[Wand] Outline: %d pixels (%d midpoints, %d bridged), mean radius %.2f, CV %.3f",
			len(o.Points), o.Midpoints, o.Bridged, mean, cv)
	}
	return sel, nil
}

// EdgeRadius walks from (cx, cy) along theta and returns the distance of the
// first pixel that leaves the region: its gray level differs from ref by
// more than the tolerance, or it falls outside the image. Returns
// MaxRadius when the ray never leaves the region.
func EdgeRadius(img image.Image, cx, cy int, theta, ref float64, params Params) float64 {
	bounds := img.Bounds()
	dx := math.Cos(theta)
	dy := math.Sin(theta)
	maxR := int(params.MaxRadius)

	for step := 1; step <= maxR; step++ {
		x := int(math.Round(float64(cx) + dx*float64(step)))
		y := int(math.Round(float64(cy) + dy*float64(step)))

		if !(image.Point{X: x, Y: y}.In(bounds)) {
			return float64(step)
		}
		if math.Abs(colorutil.Gray(img.At(x, y))-ref) > params.Tolerance {
			return float64(step)
		}
	}
	return params.MaxRadius
}
