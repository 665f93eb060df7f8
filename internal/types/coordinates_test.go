package types

import (
	"math"
	"testing"
)

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{"Aspen", NewCoords(39.11539, -107.6584), true},
		{"north pole", NewCoords(90, 0), true},
		{"antimeridian", NewCoords(0, -180), true},
		{"latitude too high", NewCoords(90.1, 0), false},
		{"longitude too low", NewCoords(0, -180.5), false},
		{"NaN latitude", NewCoords(math.NaN(), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoords_Point(t *testing.T) {
	p := NewCoords(39.11539, -107.6584).Point()
	if p.Lon() != -107.6584 || p.Lat() != 39.11539 {
		t.Errorf("Point() = %v, want lon first", p)
	}
}

func TestNewElevationFromMeters(t *testing.T) {
	e := NewElevationFromMeters(3048)
	if e.Meters != 3048 {
		t.Errorf("Meters = %v, want 3048", e.Meters)
	}
	if math.Abs(e.Feet-10000) > 1e-9 {
		t.Errorf("Feet = %v, want 10000", e.Feet)
	}
}
