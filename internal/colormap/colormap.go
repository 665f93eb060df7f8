package colormap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultName is the colormap used for area coloring when none is configured
const DefaultName = "blackbody"

var (
	ErrUnknownColormap = errors.New("unknown colormap")
	ErrTooFewShades    = errors.New("too few shades for colormap")
)

// stop is a keypoint of a colormap: an RGB triple at a position in [0, 1]
type stop struct {
	Pos float64
	RGB [3]uint8
}

var colormaps = map[string][]stop{
	"blackbody": {
		{0, [3]uint8{0, 0, 0}},
		{0.2, [3]uint8{230, 0, 0}},
		{0.4, [3]uint8{230, 210, 0}},
		{0.7, [3]uint8{255, 255, 255}},
		{1, [3]uint8{160, 200, 255}},
	},
	"hot": {
		{0, [3]uint8{0, 0, 0}},
		{0.3, [3]uint8{230, 0, 0}},
		{0.6, [3]uint8{255, 210, 0}},
		{1, [3]uint8{255, 255, 255}},
	},
	"jet": {
		{0, [3]uint8{0, 0, 131}},
		{0.125, [3]uint8{0, 60, 170}},
		{0.375, [3]uint8{5, 255, 255}},
		{0.625, [3]uint8{255, 255, 0}},
		{0.875, [3]uint8{250, 0, 0}},
		{1, [3]uint8{128, 0, 0}},
	},
	"greys": {
		{0, [3]uint8{0, 0, 0}},
		{1, [3]uint8{255, 255, 255}},
	},
	"bone": {
		{0, [3]uint8{0, 0, 0}},
		{0.376, [3]uint8{84, 84, 116}},
		{0.753, [3]uint8{169, 200, 200}},
		{1, [3]uint8{255, 255, 255}},
	},
}

// Names returns the supported colormap names in sorted order
func Names() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ramp is an immutable, ordered palette of discrete colors.
type Ramp struct {
	name   string
	colors []colorful.Color
}

// New builds a ramp of the given number of shades from a named colormap.
//
// Each stop is placed at round(pos*(shades-1)); the colors between two stops are
// linear RGB interpolations rounded per channel, and the last stop closes the ramp.
func New(name string, shades int) (Ramp, error) {
	stops, ok := colormaps[name]
	if !ok {
		return Ramp{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	if shades < len(stops) {
		return Ramp{}, fmt.Errorf("%w: %s needs at least %d, got %d", ErrTooFewShades, name, len(stops), shades)
	}

	n := float64(shades - 1)
	indices := make([]int, len(stops))
	for i, s := range stops {
		indices[i] = int(roundHalfUp(s.Pos * n))
	}

	colors := make([]colorful.Color, 0, shades)
	for i := 0; i < len(stops)-1; i++ {
		steps := indices[i+1] - indices[i]
		from, to := stops[i].RGB, stops[i+1].RGB
		for j := 0; j < steps; j++ {
			amt := float64(j) / float64(steps)
			colors = append(colors, rgb(
				roundHalfUp(lerp(float64(from[0]), float64(to[0]), amt)),
				roundHalfUp(lerp(float64(from[1]), float64(to[1]), amt)),
				roundHalfUp(lerp(float64(from[2]), float64(to[2]), amt)),
			))
		}
	}
	last := stops[len(stops)-1].RGB
	colors = append(colors, rgb(float64(last[0]), float64(last[1]), float64(last[2])))

	return Ramp{name: name, colors: colors}, nil
}

// Name returns the colormap the ramp was generated from
func (r Ramp) Name() string {
	return r.name
}

// Len returns the number of shades
func (r Ramp) Len() int {
	return len(r.colors)
}

// At returns the color at index i. It panics if i is out of range.
func (r Ramp) At(i int) colorful.Color {
	return r.colors[i]
}

// Hex returns the ramp as CSS hex strings
func (r Ramp) Hex() []string {
	out := make([]string, len(r.colors))
	for i, c := range r.colors {
		out[i] = c.Hex()
	}
	return out
}

func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255.0, G: g / 255.0, B: b / 255.0}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
