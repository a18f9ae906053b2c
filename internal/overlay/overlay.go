// Package overlay draws wand selections on top of the source image for
// visual inspection.
package overlay

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"wand-tracer/pkg/colorutil"
	"wand-tracer/pkg/geometry"
)

// Render returns a PNG of img with the outline drawn in magenta and the
// click marked in green. Points are relative to img.Bounds().Min.
func Render(img image.Image, center geometry.PointInt, points []geometry.PointInt) ([]byte, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}

	mat, err := imageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	for i, p := range points {
		next := points[(i+1)%len(points)]
		gocv.Line(&mat, toImagePoint(p), toImagePoint(next), colorutil.Magenta, 1)
	}
	gocv.Circle(&mat, toImagePoint(center), 3, colorutil.Green, 1)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}
	defer buf.Close()

	// buf is backed by C memory
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

func toImagePoint(p geometry.PointInt) image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// imageToMat converts an image into a BGR Mat with its origin at Bounds().Min.
func imageToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()

	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	mat, err := gocv.NewMatFromBytes(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return gocv.Mat{}, err
	}

	bgr := gocv.NewMat()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)
	mat.Close()

	return bgr, nil
}
