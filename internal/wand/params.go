package wand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wand-tracer/internal/outline"
	"wand-tracer/internal/polar"
)

// Params holds parameters for a wand selection.
type Params struct {
	Rays      int     `yaml:"rays"`       // Directions sampled around the click
	MaxRadius float64 `yaml:"max_radius"` // Longest ray, in pixels
	Tolerance float64 `yaml:"tolerance"`  // Allowed gray-level difference from the click (0-255)

	Epsilon  float64 `yaml:"epsilon"`   // Same-sample tolerance for diagonal midpoints
	MaxDepth int     `yaml:"max_depth"` // Subdivision depth between two rays

	// Coefficient of variation of the edge radii below which the selection
	// is reported as circular.
	CircularityMax float64 `yaml:"circularity_max"`

	Verbose bool `yaml:"verbose"`
}

// DefaultParams returns default wand parameters.
// These are tuned for roughly round blobs up to a few hundred pixels across.
func DefaultParams() Params {
	return Params{
		Rays:      64,
		MaxRadius: 200,
		Tolerance: 40,

		Epsilon:  polar.DefaultEpsilon,
		MaxDepth: outline.DefaultMaxDepth,

		CircularityMax: 0.20,
	}
}

// WithRays returns a copy of params sampling n directions.
func (p Params) WithRays(n int) Params {
	p.Rays = n
	return p
}

// WithTolerance returns a copy of params with a different gray-level tolerance.
func (p Params) WithTolerance(t float64) Params {
	p.Tolerance = t
	return p
}

// WithMaxRadius returns a copy of params with a different ray length.
func (p Params) WithMaxRadius(r float64) Params {
	p.MaxRadius = r
	return p
}

// Validate checks that the parameters can drive a selection.
func (p Params) Validate() error {
	if p.Rays < 3 {
		return fmt.Errorf("rays must be at least 3, got %d", p.Rays)
	}
	if p.MaxRadius < 1 {
		return fmt.Errorf("max_radius must be at least 1, got %g", p.MaxRadius)
	}
	if p.Tolerance < 0 || p.Tolerance > 255 {
		return fmt.Errorf("tolerance must be within [0, 255], got %g", p.Tolerance)
	}
	if p.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", p.Epsilon)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", p.MaxDepth)
	}
	return nil
}

// ParseParams reads yaml on top of DefaultParams and validates the result.
func ParseParams(data []byte) (Params, error) {
	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse wand params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid wand params: %w", err)
	}
	return p, nil
}

// LoadParams reads a yaml parameter file.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("cannot read wand params: %w", err)
	}
	return ParseParams(data)
}

// YAML returns the parameters as a yaml document.
func (p Params) YAML() (string, error) {
	b, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal wand params: %w", err)
	}
	return string(b), nil
}
