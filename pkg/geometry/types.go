// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInt represents a pixel position.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Center returns the center of the pixel in continuous coordinates.
func (p PointInt) Center() Point2D {
	return Point2D{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Chebyshev returns the chessboard distance to another pixel.
func (p PointInt) Chebyshev(other PointInt) int {
	return max(absInt(p.X-other.X), absInt(p.Y-other.Y))
}

// IsAdjacent4 reports whether other differs by one unit along exactly one axis.
func (p PointInt) IsAdjacent4(other PointInt) bool {
	return absInt(p.X-other.X)+absInt(p.Y-other.Y) == 1
}

// IsDiagonal reports whether other touches p only at a corner.
func (p PointInt) IsDiagonal(other PointInt) bool {
	return absInt(p.X-other.X) == 1 && absInt(p.Y-other.Y) == 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
