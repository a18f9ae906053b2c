// Package outline turns an angular sweep of edge radii into a closed,
// 4-connected pixel outline, and rasterizes outlines into selection masks.
package outline

import (
	"errors"
	"fmt"
	"math"

	"wand-tracer/internal/polar"
	"wand-tracer/pkg/geometry"
)

// DefaultMaxDepth bounds the recursive subdivision between two samples.
const DefaultMaxDepth = 16

// ErrTooFewSamples is returned when a sweep cannot enclose an area.
var ErrTooFewSamples = errors.New("need at least 3 samples")

// Sample is an edge distance measured along one direction from the center.
type Sample struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// Sweep returns n samples evenly spaced over [0, 2π), asking radiusAt for
// the edge distance in each direction.
func Sweep(n int, radiusAt func(theta float64) float64) []Sample {
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(n)
		samples = append(samples, Sample{R: radiusAt(theta), Theta: theta})
	}
	return samples
}

// Outline is a closed pixel boundary. The last point steps back onto the
// first; it is not repeated.
type Outline struct {
	Points []geometry.PointInt `json:"points"`

	Samples    int `json:"samples"`    // Genuine samples converted
	Midpoints  int `json:"midpoints"`  // Pixels added by subdividing between samples
	Bridged    int `json:"bridged"`    // Pixels added as orthogonal steps when subdivision stalled
	Duplicates int `json:"duplicates"` // Consecutive repeats removed
}

// IsFourConnected reports whether every step around the outline, including
// the closing one, moves exactly one pixel horizontally or vertically.
func (o Outline) IsFourConnected() bool {
	if len(o.Points) == 1 {
		return true
	}
	return geometry.IsFourConnected(o.Points, true)
}

// Area returns the area enclosed by the polygon through the pixel centers.
func (o Outline) Area() float64 {
	return geometry.PolygonArea(o.centers())
}

// Contains reports whether pixel (x, y) lies on or inside the outline.
func (o Outline) Contains(x, y int) bool {
	p := geometry.PointInt{X: x, Y: y}
	for _, q := range o.Points {
		if q == p {
			return true
		}
	}
	c := p.Center()
	return geometry.PointInPolygon(c.X, c.Y, o.centers())
}

func (o Outline) centers() []geometry.Point2D {
	pts := make([]geometry.Point2D, len(o.Points))
	for i, p := range o.Points {
		pts[i] = p.Center()
	}
	return pts
}

// Trace converts the samples, in sweep order, into a closed outline.
// Between consecutive samples (and from the last back to the first) it
// keeps inserting Combine midpoints until neighbouring pixels are
// 4-adjacent. If a midpoint lands on one of its parents, or maxDepth is
// reached, the remaining gap is closed with unit steps along x then y.
func Trace(conv polar.Converter, samples []Sample, maxDepth int) (Outline, error) {
	if len(samples) < 3 {
		return Outline{}, fmt.Errorf("trace %d samples: %w", len(samples), ErrTooFewSamples)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	pixels := make([]polar.PolarPixel, len(samples))
	for i, s := range samples {
		p, err := conv.Convert(s.R, s.Theta)
		if err != nil {
			return Outline{}, fmt.Errorf("sample %d: %w", i, err)
		}
		pixels[i] = p
	}

	t := &tracer{conv: conv, maxDepth: maxDepth}
	t.out.Samples = len(pixels)
	for i, p := range pixels {
		next := pixels[(i+1)%len(pixels)]
		t.push(p.Point())
		if err := t.fill(p, next, 0); err != nil {
			return Outline{}, err
		}
	}
	t.close()

	return t.out, nil
}

type tracer struct {
	conv     polar.Converter
	maxDepth int
	out      Outline
}

// fill appends the pixels strictly between a and c.
func (t *tracer) fill(a, c polar.PolarPixel, depth int) error {
	pa, pc := a.Point(), c.Point()
	if pa == pc || pa.IsAdjacent4(pc) {
		return nil
	}
	if depth >= t.maxDepth {
		t.bridge(pa, pc)
		return nil
	}

	m, err := t.conv.Combine(a, c)
	if err != nil {
		return fmt.Errorf("combine %v and %v: %w", a, c, err)
	}
	pm := m.Point()
	if pm == pa || pm == pc {
		t.bridge(pa, pc)
		return nil
	}

	if err := t.fill(a, m, depth+1); err != nil {
		return err
	}
	t.out.Midpoints++
	t.push(pm)
	return t.fill(m, c, depth+1)
}

// bridge appends a staircase of unit steps from a toward c, excluding both ends.
func (t *tracer) bridge(a, c geometry.PointInt) {
	p := a
	for {
		switch {
		case p.X < c.X:
			p.X++
		case p.X > c.X:
			p.X--
		case p.Y < c.Y:
			p.Y++
		case p.Y > c.Y:
			p.Y--
		}
		if p == c {
			return
		}
		t.out.Bridged++
		t.push(p)
	}
}

func (t *tracer) push(p geometry.PointInt) {
	if n := len(t.out.Points); n > 0 && t.out.Points[n-1] == p {
		t.out.Duplicates++
		return
	}
	t.out.Points = append(t.out.Points, p)
}

// close drops trailing points that repeat the start of the outline.
func (t *tracer) close() {
	pts := t.out.Points
	for len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
		t.out.Duplicates++
	}
	t.out.Points = pts
}
