//go:build integration

package openmeteo

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

// Points outside the USGS dataset are the reason this provider sits second in the chain
func TestElevationClient_ElevationMeters_Integration(t *testing.T) {
	client := NewElevationClient("", slog.New(slog.NewTextHandler(os.Stdout, nil)))

	tests := []struct {
		name     string
		lat, lon float64
		min, max float64
	}{
		{"Aspen, CO", 39.11539, -107.65840, 2300, 3400},
		{"Chamonix, FR", 45.9237, 6.8694, 900, 1300},
		{"Dead Sea shore", 31.5590, 35.4732, -450, -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			meters, err := client.ElevationMeters(ctx, tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("ElevationMeters(%v, %v) error = %v", tt.lat, tt.lon, err)
			}
			t.Logf("%s: %v m", tt.name, meters)

			if meters < tt.min || meters > tt.max {
				t.Errorf("ElevationMeters() = %v, want within [%v, %v]", meters, tt.min, tt.max)
			}
		})
	}
}
