package polar

import "math"

const twoPi = 2 * math.Pi

// NormalizeAngle reduces theta into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	m := math.Mod(theta, twoPi)
	if m < 0 {
		m += twoPi
	}
	// -tiny + 2π rounds to 2π
	if m >= twoPi {
		m = 0
	}
	return m
}

// CircularMean returns the mean of two angles, taking wraparound into
// account: the mean of 10° and 350° is 0°, not 180°. The result is in
// [0, 2π) and does not depend on argument order.
func CircularMean(thetaA, thetaB float64) float64 {
	a := NormalizeAngle(thetaA)
	b := NormalizeAngle(thetaB)
	bigger, smaller := math.Max(a, b), math.Min(a, b)
	if bigger-smaller > math.Pi {
		bigger -= twoPi
	}
	return NormalizeAngle((bigger + smaller) / 2)
}

// quadrant returns 0..3 for theta in [0, π/2), [π/2, π), [π, 3π/2), [3π/2, 2π).
func quadrant(theta float64) int {
	switch t := NormalizeAngle(theta); {
	case t < math.Pi/2:
		return 0
	case t < math.Pi:
		return 1
	case t < math.Pi*3/2:
		return 2
	default:
		return 3
	}
}
