// Package areacolor maps polygon surface areas onto a perceptual color ramp.
package areacolor

import (
	"errors"
	"fmt"
	"math"

	"areamap/internal/colormap"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultMin   = 1e8  // smallest area of interest, m²
	DefaultMax   = 2e13 // biggest area of interest, m²
	DefaultSteps = 50
)

var ErrInvalidConfig = errors.New("invalid area color configuration")

// Config defines the domain of areas spread over the ramp
type Config struct {
	Min   float64
	Max   float64
	Steps int
}

// DefaultConfig returns the 1e8..2e13 m² range over 50 shades
func DefaultConfig() Config {
	return Config{
		Min:   DefaultMin,
		Max:   DefaultMax,
		Steps: DefaultSteps,
	}
}

// Validate checks that the configuration describes a non-empty range and at
// least one step.
func (c Config) Validate() error {
	if math.IsNaN(c.Min) || math.IsNaN(c.Max) || math.IsInf(c.Min, 0) || math.IsInf(c.Max, 0) {
		return fmt.Errorf("%w: min and max must be finite", ErrInvalidConfig)
	}
	if c.Max <= c.Min {
		return fmt.Errorf("%w: max (%g) must be greater than min (%g)", ErrInvalidConfig, c.Max, c.Min)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

// Clamp restricts value to [low, high]. NaN maps to low.
func Clamp(value, low, high float64) float64 {
	if math.IsNaN(value) {
		return low
	}
	return math.Max(low, math.Min(value, high))
}

// Mapper resolves areas to ramp entries. It holds no mutable state and is safe
// for concurrent use.
type Mapper struct {
	cfg  Config
	ramp colormap.Ramp
}

// NewMapper creates a Mapper over ramp. The ramp must have exactly cfg.Steps entries.
func NewMapper(cfg Config, ramp colormap.Ramp) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ramp.Len() != cfg.Steps {
		return nil, fmt.Errorf("%w: ramp has %d colors, expected %d", ErrInvalidConfig, ramp.Len(), cfg.Steps)
	}
	return &Mapper{cfg: cfg, ramp: ramp}, nil
}

// Config returns the mapper's configuration
func (m *Mapper) Config() Config {
	return m.cfg
}

// Ramp returns the ramp the mapper indexes into
func (m *Mapper) Ramp() colormap.Ramp {
	return m.ramp
}

// Index returns the ramp position for area. The sqrt response curve spreads
// small and medium areas over more of the ramp than huge ones.
func (m *Mapper) Index(area float64) int {
	if math.IsNaN(area) {
		area = m.cfg.Min
	}
	t := Clamp((area-m.cfg.Min)/(m.cfg.Max-m.cfg.Min), 0, 1)
	f := math.Sqrt(t)
	return int(math.Floor(f*float64(m.cfg.Steps-1) + 0.5))
}

// ColorFor returns the ramp color for area
func (m *Mapper) ColorFor(area float64) colorful.Color {
	return m.ramp.At(m.Index(area))
}
