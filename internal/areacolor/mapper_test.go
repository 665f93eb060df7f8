package areacolor

import (
	"errors"
	"math"
	"testing"

	"areamap/internal/colormap"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()

	ramp, err := colormap.New(colormap.DefaultName, DefaultSteps)
	if err != nil {
		t.Fatalf("colormap.New() error = %v", err)
	}
	m, err := NewMapper(DefaultConfig(), ramp)
	if err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}
	return m
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		low, high float64
		want      float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -3, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"at low", 0, 0, 1, 0},
		{"at high", 1, 0, 1, 1},
		{"negative infinity", math.Inf(-1), 0, 1, 0},
		{"positive infinity", math.Inf(1), 0, 1, 1},
		{"NaN", math.NaN(), 2, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.low, tt.high)
			if got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.low, tt.high, got, tt.want)
			}
		})
	}
}

func TestMapper_Index(t *testing.T) {
	m := newTestMapper(t)
	last := DefaultSteps - 1

	tests := []struct {
		name string
		area float64
		want int
	}{
		{"at min", DefaultMin, 0},
		{"at max", DefaultMax, last},
		{"zero", 0, 0},
		{"negative", -1e9, 0},
		{"below min", DefaultMin / 2, 0},
		{"above max", DefaultMax * 10, last},
		{"midpoint", (DefaultMin + DefaultMax) / 2, 35},
		{"NaN treated as min", math.NaN(), 0},
		{"positive infinity", math.Inf(1), last},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Index(tt.area)
			if got != tt.want {
				t.Errorf("Index(%v) = %d, want %d", tt.area, got, tt.want)
			}
		})
	}
}

func TestMapper_IndexWithinRamp(t *testing.T) {
	m := newTestMapper(t)

	areas := []float64{
		-math.MaxFloat64, -1, 0, 1, 1e4, 1e8, 5e8, 1e10, 1e12, 1e13, 2e13, 1e20, math.MaxFloat64,
		math.NaN(), math.Inf(1), math.Inf(-1),
	}
	for _, area := range areas {
		idx := m.Index(area)
		if idx < 0 || idx >= DefaultSteps {
			t.Errorf("Index(%v) = %d, outside [0, %d)", area, idx, DefaultSteps)
		}
	}
}

func TestMapper_IndexMonotonic(t *testing.T) {
	m := newTestMapper(t)

	prev := m.Index(DefaultMin)
	const samples = 10000
	for i := 1; i <= samples; i++ {
		area := DefaultMin + (DefaultMax-DefaultMin)*float64(i)/samples
		idx := m.Index(area)
		if idx < prev {
			t.Fatalf("Index(%v) = %d decreased from %d", area, idx, prev)
		}
		prev = idx
	}
	if prev != DefaultSteps-1 {
		t.Errorf("final index = %d, want %d", prev, DefaultSteps-1)
	}
}

func TestMapper_ColorFor(t *testing.T) {
	m := newTestMapper(t)
	ramp := m.Ramp()

	if got := m.ColorFor(DefaultMin); got != ramp.At(0) {
		t.Errorf("ColorFor(min) = %s, want %s", got.Hex(), ramp.At(0).Hex())
	}
	if got := m.ColorFor(DefaultMax); got != ramp.At(DefaultSteps-1) {
		t.Errorf("ColorFor(max) = %s, want %s", got.Hex(), ramp.At(DefaultSteps-1).Hex())
	}
	if got := m.ColorFor(-42); got != ramp.At(0) {
		t.Errorf("ColorFor(-42) = %s, want %s", got.Hex(), ramp.At(0).Hex())
	}

	area := 3.3e11
	first := m.ColorFor(area)
	for i := 0; i < 10; i++ {
		if got := m.ColorFor(area); got != first {
			t.Fatalf("ColorFor(%v) call %d = %s, want %s", area, i, got.Hex(), first.Hex())
		}
	}
}

func TestMapper_SingleStep(t *testing.T) {
	ramp, err := colormap.New("greys", 2)
	if err != nil {
		t.Fatalf("colormap.New() error = %v", err)
	}
	m, err := NewMapper(Config{Min: 0, Max: 1, Steps: 2}, ramp)
	if err != nil {
		t.Fatalf("NewMapper() error = %v", err)
	}

	// sqrt(0.2) ≈ 0.447 rounds to 0, sqrt(0.3) ≈ 0.548 rounds to 1
	if got := m.Index(0.2); got != 0 {
		t.Errorf("Index(0.2) = %d, want 0", got)
	}
	if got := m.Index(0.3); got != 1 {
		t.Errorf("Index(0.3) = %d, want 1", got)
	}
}

func TestNewMapper_InvalidConfig(t *testing.T) {
	ramp, err := colormap.New(colormap.DefaultName, DefaultSteps)
	if err != nil {
		t.Fatalf("colormap.New() error = %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"max equals min", Config{Min: 10, Max: 10, Steps: DefaultSteps}},
		{"max below min", Config{Min: 10, Max: 1, Steps: DefaultSteps}},
		{"zero steps", Config{Min: 1, Max: 10, Steps: 0}},
		{"NaN bound", Config{Min: math.NaN(), Max: 10, Steps: DefaultSteps}},
		{"infinite bound", Config{Min: 1, Max: math.Inf(1), Steps: DefaultSteps}},
		{"ramp length mismatch", Config{Min: 1, Max: 10, Steps: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapper(tt.cfg, ramp)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewMapper() error = %v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}

type fixedArea struct {
	area float64
}

func (f fixedArea) Area(orb.Geometry) float64 {
	return f.area
}

func TestStyler_StyleFor(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		name      string
		area      float64
		wantIndex int
	}{
		{"small polygon", 1e6, 0},
		{"midpoint polygon", (DefaultMin + DefaultMax) / 2, 35},
		{"huge polygon", 5e13, DefaultSteps - 1},
		{"degenerate polygon", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			styler := NewStyler(m, fixedArea{area: tt.area})
			feature := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})

			style := styler.StyleFor(feature)
			if style.RampIndex != tt.wantIndex {
				t.Errorf("RampIndex = %d, want %d", style.RampIndex, tt.wantIndex)
			}
			if style.Fill != m.Ramp().At(tt.wantIndex).Hex() {
				t.Errorf("Fill = %s, want %s", style.Fill, m.Ramp().At(tt.wantIndex).Hex())
			}
			if style.Stroke != StrokeColor {
				t.Errorf("Stroke = %s, want %s", style.Stroke, StrokeColor)
			}
		})
	}
}

func TestStyler_NilFeature(t *testing.T) {
	m := newTestMapper(t)
	styler := NewStyler(m, fixedArea{area: 1e13})

	style := styler.StyleFor(nil)
	if style.RampIndex != 0 || style.Area != 0 {
		t.Errorf("StyleFor(nil) = %+v, want index 0 and area 0", style)
	}
}
