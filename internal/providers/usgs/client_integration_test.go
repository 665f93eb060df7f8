//go:build integration

package usgs

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_ElevationMeters_Integration(t *testing.T) {
	client := NewClient("", slog.New(slog.NewTextHandler(os.Stdout, nil)))

	tests := []struct {
		name     string
		lat, lon float64
		min, max float64
	}{
		{"Aspen, CO", 39.11539, -107.65840, 2300, 3400},
		{"Death Valley", 36.2299, -116.7678, -100, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
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
