// Package polar converts polar samples taken around a center point into
// integer pixel coordinates clamped to an image, and blends pairs of such
// samples when an outline is subdivided.
package polar

import (
	"errors"
	"fmt"
	"math"

	"wand-tracer/pkg/geometry"
)

// DefaultEpsilon is the tolerance used to decide that two samples share the
// same radius and angle.
const DefaultEpsilon = 1e-6

// radiusOffset maps a continuous edge radius onto the pixel grid used for
// command-line selections.
const radiusOffset = 1.5

// ErrInvalidInput is returned for non-finite samples and negative bounds.
var ErrInvalidInput = errors.New("invalid input")

// Bounds holds the inclusive maximum pixel index along each axis, so the
// valid range is [0, MaxX] x [0, MaxY].
type Bounds struct {
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Validate checks that both maxima are non-negative.
func (b Bounds) Validate() error {
	if b.MaxX < 0 || b.MaxY < 0 {
		return fmt.Errorf("bounds (%d, %d) must be non-negative: %w", b.MaxX, b.MaxY, ErrInvalidInput)
	}
	return nil
}

// PolarPixel is a polar sample together with the pixel it maps to.
// The pixel is fixed when the value is built and always lies inside the
// bounds it was built against.
type PolarPixel struct {
	r     float64
	theta float64
	x     int
	y     int
}

// R returns the radius the pixel was built from.
func (p PolarPixel) R() float64 { return p.r }

// Theta returns the angle, in radians, the pixel was built from.
func (p PolarPixel) Theta() float64 { return p.theta }

// X returns the clamped pixel column.
func (p PolarPixel) X() int { return p.x }

// Y returns the clamped pixel row.
func (p PolarPixel) Y() int { return p.y }

// Point returns the pixel position.
func (p PolarPixel) Point() geometry.PointInt {
	return geometry.PointInt{X: p.x, Y: p.y}
}

func (p PolarPixel) String() string {
	return fmt.Sprintf("(%d,%d) r=%.3f θ=%.4f", p.x, p.y, p.r, p.theta)
}

// Converter maps samples around a fixed center into a fixed image.
// The zero Epsilon means DefaultEpsilon.
type Converter struct {
	CenterX int
	CenterY int
	Bounds  Bounds
	Epsilon float64
}

// NewConverter returns a Converter for the given center and bounds.
func NewConverter(cx, cy int, bounds Bounds) (Converter, error) {
	if err := bounds.Validate(); err != nil {
		return Converter{}, err
	}
	return Converter{CenterX: cx, CenterY: cy, Bounds: bounds, Epsilon: DefaultEpsilon}, nil
}

func (c Converter) epsilon() float64 {
	if c.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return c.Epsilon
}

// Convert builds the PolarPixel for the sample (r, theta).
func (c Converter) Convert(r, theta float64) (PolarPixel, error) {
	if err := c.Bounds.Validate(); err != nil {
		return PolarPixel{}, err
	}
	if err := checkSample(r, theta); err != nil {
		return PolarPixel{}, err
	}

	p := PolarPixel{r: r, theta: theta}
	p.x, p.y = c.toPixel(r, theta)
	return p, nil
}

// Combine builds the pixel halfway between a and b: the radii are averaged
// and the angles are averaged circularly.
//
// When a and b touch only at a corner and carry the same sample (within
// Epsilon), the result is forced onto an orthogonal neighbour of a so the
// outline stays 4-connected. The neighbour is picked from a, so
// Combine(a, b) and Combine(b, a) may differ in that case.
func (c Converter) Combine(a, b PolarPixel) (PolarPixel, error) {
	if err := c.Bounds.Validate(); err != nil {
		return PolarPixel{}, err
	}
	r := (a.r + b.r) / 2
	theta := CircularMean(a.theta, b.theta)
	if err := checkSample(r, theta); err != nil {
		return PolarPixel{}, err
	}

	p := PolarPixel{r: r, theta: theta}
	p.x, p.y = c.toPixel(r, theta)

	eps := c.epsilon()
	if a.Point().IsDiagonal(b.Point()) &&
		math.Abs(a.theta-b.theta) < eps && math.Abs(a.r-b.r) < eps {
		switch quadrant(theta) {
		case 0:
			p.x, p.y = a.x-1, a.y
		case 1:
			p.x, p.y = a.x, a.y-1
		case 2:
			p.x, p.y = a.x+1, a.y
		default:
			p.x, p.y = a.x, a.y+1
		}
		p.x = clamp(p.x, c.Bounds.MaxX)
		p.y = clamp(p.y, c.Bounds.MaxY)
	}
	return p, nil
}

// toPixel projects (r, theta) onto the grid and clamps the result. The
// clamp happens on the float so huge radii cannot overflow int.
func (c Converter) toPixel(r, theta float64) (int, int) {
	adjusted := r - radiusOffset
	fx := math.Ceil(adjusted*math.Cos(theta)) + float64(c.CenterX)
	fy := math.Ceil(adjusted*math.Sin(theta)) + float64(c.CenterY)
	return clampFloat(fx, c.Bounds.MaxX), clampFloat(fy, c.Bounds.MaxY)
}

// Convert builds the PolarPixel for the sample (r, theta) taken around
// (cx, cy), clamped to [0, maxX] x [0, maxY].
func Convert(r, theta float64, cx, cy, maxX, maxY int) (PolarPixel, error) {
	conv := Converter{CenterX: cx, CenterY: cy, Bounds: Bounds{MaxX: maxX, MaxY: maxY}}
	return conv.Convert(r, theta)
}

// Combine builds the midpoint of a and c around (cx, cy), clamped to
// [0, maxX] x [0, maxY], using DefaultEpsilon. See Converter.Combine.
func Combine(a, c PolarPixel, cx, cy, maxX, maxY int) (PolarPixel, error) {
	conv := Converter{CenterX: cx, CenterY: cy, Bounds: Bounds{MaxX: maxX, MaxY: maxY}}
	return conv.Combine(a, c)
}

func checkSample(r, theta float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("radius %v: %w", r, ErrInvalidInput)
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return fmt.Errorf("angle %v: %w", theta, ErrInvalidInput)
	}
	return nil
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v float64, hi int) int {
	if v < 0 {
		return 0
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}
