package polar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wand-tracer/pkg/geometry"
)

func TestConvertRegression(t *testing.T) {
	p, err := Convert(10, 0, 50, 50, 99, 99)
	require.NoError(t, err)

	// (10 - 1.5) * cos(0) = 8.5 -> ceil 9; sin(0) = 0 -> ceil 0
	assert.Equal(t, 59, p.X())
	assert.Equal(t, 50, p.Y())
	assert.Equal(t, 10.0, p.R())
	assert.Equal(t, 0.0, p.Theta())
}

func TestConvertCeilsNegativeComponents(t *testing.T) {
	p, err := Convert(10, math.Pi, 50, 50, 99, 99)
	require.NoError(t, err)

	// 8.5 * cos(π) = -8.5 -> ceil -8; 8.5 * sin(π) is a tiny positive -> ceil 1
	assert.Equal(t, 42, p.X())
	assert.Equal(t, 51, p.Y())
}

func TestConvertClamps(t *testing.T) {
	tests := []struct {
		name         string
		r, theta     float64
		wantX, wantY int
	}{
		{name: "right edge", r: 1000, theta: 0, wantX: 99, wantY: 50},
		{name: "left edge", r: 1000, theta: math.Pi, wantX: 0, wantY: 51},
		{name: "bottom edge", r: 1000, theta: math.Pi / 2, wantX: 51, wantY: 99},
		{name: "top edge", r: 1000, theta: 3 * math.Pi / 2, wantX: 50, wantY: 0},
		{name: "huge radius", r: 1e300, theta: 0.7, wantX: 99, wantY: 99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Convert(tc.r, tc.theta, 50, 50, 99, 99)
			require.NoError(t, err)
			assert.Equal(t, tc.wantX, p.X(), "x")
			assert.Equal(t, tc.wantY, p.Y(), "y")
		})
	}
}

func TestConvertStaysInBounds(t *testing.T) {
	centers := []geometry.PointInt{{X: 0, Y: 0}, {X: 3, Y: 7}, {X: 20, Y: 20}, {X: -5, Y: 40}}
	radii := []float64{-50, 0, 1.5, 2.25, 7, 33.3, 500}

	for _, c := range centers {
		for _, r := range radii {
			for i := 0; i < 64; i++ {
				theta := float64(i) * 2 * math.Pi / 64
				p, err := Convert(r, theta, c.X, c.Y, 19, 9)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, p.X(), 0)
				assert.LessOrEqual(t, p.X(), 19)
				assert.GreaterOrEqual(t, p.Y(), 0)
				assert.LessOrEqual(t, p.Y(), 9)
			}
		}
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		r, theta   float64
		maxX, maxY int
	}{
		{name: "nan radius", r: math.NaN(), theta: 0, maxX: 9, maxY: 9},
		{name: "inf radius", r: math.Inf(1), theta: 0, maxX: 9, maxY: 9},
		{name: "nan angle", r: 3, theta: math.NaN(), maxX: 9, maxY: 9},
		{name: "-inf angle", r: 3, theta: math.Inf(-1), maxX: 9, maxY: 9},
		{name: "negative maxX", r: 3, theta: 0, maxX: -1, maxY: 9},
		{name: "negative maxY", r: 3, theta: 0, maxX: 9, maxY: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(tc.r, tc.theta, 5, 5, tc.maxX, tc.maxY)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConvertZeroBounds(t *testing.T) {
	p, err := Convert(40, 2, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.PointInt{}, p.Point())
}

func TestCombineMatchesConvertOffDiagonal(t *testing.T) {
	conv, err := NewConverter(50, 50, Bounds{MaxX: 99, MaxY: 99})
	require.NoError(t, err)

	pairs := []struct {
		name           string
		ra, ta, rc, tc float64
	}{
		{name: "spread", ra: 10, ta: 0.2, rc: 20, tc: 1.0},
		{name: "wraparound", ra: 12, ta: 0.1, rc: 12, tc: 6.2},
		{name: "same pixel", ra: 10, ta: 0.3, rc: 10, tc: 0.3},
		{name: "opposite", ra: 5, ta: 0, rc: 15, tc: math.Pi},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			a, err := conv.Convert(tc.ra, tc.ta)
			require.NoError(t, err)
			c, err := conv.Convert(tc.rc, tc.tc)
			require.NoError(t, err)
			require.False(t, a.Point().IsDiagonal(c.Point()))

			got, err := conv.Combine(a, c)
			require.NoError(t, err)
			want, err := conv.Convert((tc.ra+tc.rc)/2, CircularMean(tc.ta, tc.tc))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCombineDiagonalOverride(t *testing.T) {
	a := PolarPixel{r: 10, theta: 0.3, x: 5, y: 5}
	c := PolarPixel{r: 10, theta: 0.3, x: 6, y: 6}

	got, err := Combine(a, c, 50, 50, 99, 99)
	require.NoError(t, err)
	assert.Equal(t, geometry.PointInt{X: 4, Y: 5}, got.Point())
	assert.LessOrEqual(t, got.Point().Chebyshev(a.Point()), 1)
	assert.Equal(t, 10.0, got.R())
	assert.InDelta(t, 0.3, got.Theta(), 1e-12)

	// anchored on the first argument
	swapped, err := Combine(c, a, 50, 50, 99, 99)
	require.NoError(t, err)
	assert.Equal(t, geometry.PointInt{X: 5, Y: 6}, swapped.Point())
}

func TestCombineDiagonalQuadrants(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  geometry.PointInt
	}{
		{name: "first", theta: 0.3, want: geometry.PointInt{X: 4, Y: 5}},
		{name: "second", theta: math.Pi/2 + 0.1, want: geometry.PointInt{X: 5, Y: 4}},
		{name: "third", theta: math.Pi + 0.1, want: geometry.PointInt{X: 6, Y: 5}},
		{name: "fourth", theta: 3*math.Pi/2 + 0.1, want: geometry.PointInt{X: 5, Y: 6}},
		{name: "on pi/2", theta: math.Pi / 2, want: geometry.PointInt{X: 5, Y: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := PolarPixel{r: 7, theta: tc.theta, x: 5, y: 5}
			c := PolarPixel{r: 7, theta: tc.theta, x: 4, y: 6}

			got, err := Combine(a, c, 50, 50, 99, 99)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Point())
		})
	}
}

func TestCombineDiagonalOverrideClamps(t *testing.T) {
	a := PolarPixel{r: 10, theta: 0.3, x: 0, y: 0}
	c := PolarPixel{r: 10, theta: 0.3, x: 1, y: 1}

	got, err := Combine(a, c, 50, 50, 99, 99)
	require.NoError(t, err)
	assert.Equal(t, geometry.PointInt{X: 0, Y: 0}, got.Point())
}

func TestCombineDiagonalOutsideTolerance(t *testing.T) {
	conv := Converter{CenterX: 50, CenterY: 50, Bounds: Bounds{MaxX: 99, MaxY: 99}, Epsilon: 1e-3}

	a := PolarPixel{r: 10, theta: 0.3, x: 5, y: 5}
	c := PolarPixel{r: 10, theta: 0.31, x: 6, y: 6}

	got, err := conv.Combine(a, c)
	require.NoError(t, err)
	want, err := conv.Convert(10, CircularMean(0.3, 0.31))
	require.NoError(t, err)
	assert.Equal(t, want.Point(), got.Point())

	// a wider tolerance turns on the override
	conv.Epsilon = 0.1
	got, err = conv.Combine(a, c)
	require.NoError(t, err)
	assert.Equal(t, geometry.PointInt{X: 4, Y: 5}, got.Point())
}

func TestCombineRejectsInvalidBounds(t *testing.T) {
	a := PolarPixel{r: 10, theta: 0.3, x: 5, y: 5}
	_, err := Combine(a, a, 0, 0, -1, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewConverter(0, 0, Bounds{MaxX: 3, MaxY: -2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConverterConcurrentUse(t *testing.T) {
	conv, err := NewConverter(32, 32, Bounds{MaxX: 63, MaxY: 63})
	require.NoError(t, err)

	want, err := conv.Convert(20, 1.1)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		t.Run("worker", func(t *testing.T) {
			t.Parallel()
			for j := 0; j < 1000; j++ {
				got, err := conv.Convert(20, 1.1)
				if err != nil || got != want {
					t.Fatalf("Convert = %v, %v; want %v", got, err, want)
				}
			}
		})
	}
}
