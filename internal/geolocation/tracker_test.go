package geolocation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"areamap/internal/timezone"
	"areamap/internal/types"

	"github.com/paulmach/orb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticZones struct {
	zone timezone.Zone
	err  error
}

func (s staticZones) Lookup(float64, float64, time.Time) (timezone.Zone, error) {
	return s.zone, s.err
}

type staticPlaces struct {
	place *types.Place
	err   error
	calls int
}

func (s *staticPlaces) GetPlace(context.Context, float64, float64) (*types.Place, error) {
	s.calls++
	return s.place, s.err
}

func reading(lat, lon, accuracy float64) Position {
	return Position{
		Coords:    types.NewCoords(lat, lon),
		Accuracy:  accuracy,
		Timestamp: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestTracker_Update(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil, nil, testLogger())

	if err := tr.Update(reading(39.1, -107.6, 50)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	feats := tr.Source().Features()
	if len(feats) != 2 {
		t.Fatalf("len(Features()) = %d, want 2", len(feats))
	}
	if feats[0].ID != AccuracyFeatureID || feats[1].ID != PositionFeatureID {
		t.Errorf("feature IDs = [%v %v], want [%s %s]", feats[0].ID, feats[1].ID, AccuracyFeatureID, PositionFeatureID)
	}

	circle, ok := feats[0].Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("accuracy geometry = %T, want orb.Polygon", feats[0].Geometry)
	}
	// 32 vertices plus the closing point
	if len(circle[0]) != 33 {
		t.Errorf("circle ring has %d points, want 33", len(circle[0]))
	}
	if p := feats[1].Geometry.(orb.Point); p != (orb.Point{-107.6, 39.1}) {
		t.Errorf("position point = %v, want [-107.6 39.1]", p)
	}

	// a second reading replaces the layer rather than appending to it
	if err := tr.Update(reading(40, -105, 10)); err != nil {
		t.Fatalf("second Update() error = %v", err)
	}
	if tr.Source().Len() != 2 {
		t.Errorf("Len() = %d after second update, want 2", tr.Source().Len())
	}
	if tr.Source().Revision() != 2 {
		t.Errorf("Revision() = %d, want 2", tr.Source().Revision())
	}
}

func TestTracker_ConcurrentUpdatesKeepStateConsistent(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil, nil, testLogger())
	if err := tr.Update(reading(0, 0, 10)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := tr.Update(reading(float64(i), float64(j), 10)); err != nil {
					t.Errorf("Update() error = %v", err)
				}
			}
		}(i)
	}

	stop := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			state := tr.State()
			feats := state.Layer.Features
			if len(feats) != 2 {
				t.Errorf("layer has %d features, want 2", len(feats))
				return
			}
			p := feats[1].Geometry.(orb.Point)
			if p.Lat() != state.Position.Coords.Latitude || p.Lon() != state.Position.Coords.Longitude {
				t.Errorf("position %v disagrees with layer point %v", state.Position.Coords, p)
				return
			}
			if _, err := tr.Locate(); err != nil {
				t.Errorf("Locate() error = %v", err)
				return
			}
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()
}

func TestTracker_UpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
	}{
		{"latitude out of range", reading(91, 0, 10)},
		{"longitude out of range", reading(0, 181, 10)},
		{"negative accuracy", reading(0, 0, -1)},
		{"NaN accuracy", reading(0, 0, math.NaN())},
		{"NaN latitude", reading(math.NaN(), 0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(DefaultConfig(), nil, nil, testLogger())
			if err := tr.Update(tt.pos); !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("Update() error = %v, want %v", err, ErrInvalidPosition)
			}
			if !tr.Source().IsEmpty() {
				t.Error("invalid reading added features")
			}
		})
	}
}

func TestTracker_ErrorLifecycle(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil, nil, testLogger())

	tr.ReportError(PositionError{Code: PermissionDenied, Message: "User denied Geolocation"})
	if got := tr.State().Error; got != "ERROR: User denied Geolocation" {
		t.Errorf("State().Error = %q", got)
	}

	if err := tr.Update(reading(0, 0, 5)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := tr.State().Error; got != "" {
		t.Errorf("State().Error = %q after successful reading, want empty", got)
	}
}

func TestTracker_SetHeading(t *testing.T) {
	tests := []struct {
		degrees     float64
		wantHeading float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{450, 90},
	}

	for _, tt := range tests {
		tr := NewTracker(DefaultConfig(), nil, nil, testLogger())
		if err := tr.SetHeading(tt.degrees); err != nil {
			t.Fatalf("SetHeading(%v) error = %v", tt.degrees, err)
		}
		state := tr.State()
		if state.Heading == nil || *state.Heading != tt.wantHeading {
			t.Errorf("SetHeading(%v) heading = %v, want %v", tt.degrees, state.Heading, tt.wantHeading)
		}
		wantRotation := math.Pi / 180 * tt.wantHeading
		if math.Abs(tr.Rotation()-wantRotation) > 1e-12 || math.Abs(state.Style.Rotation-wantRotation) > 1e-12 {
			t.Errorf("SetHeading(%v) rotation = %v, want %v", tt.degrees, tr.Rotation(), wantRotation)
		}
	}

	tr := NewTracker(DefaultConfig(), nil, nil, testLogger())
	if err := tr.SetHeading(math.Inf(1)); !errors.Is(err, ErrInvalidHeading) {
		t.Errorf("SetHeading(+Inf) error = %v, want %v", err, ErrInvalidHeading)
	}
}

func TestTracker_Locate(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil, nil, testLogger())

	if _, err := tr.Locate(); !errors.Is(err, ErrNoPosition) {
		t.Errorf("Locate() on empty layer error = %v, want %v", err, ErrNoPosition)
	}

	if err := tr.Update(reading(0, 0, 1000)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	fit, err := tr.Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if fit.MaxZoom != 18 || fit.DurationMs != 500 {
		t.Errorf("Locate() = zoom %d, duration %d, want 18, 500", fit.MaxZoom, fit.DurationMs)
	}
	// 1km is about 0.009 degrees at the equator
	if fit.Extent[0] > -0.008 || fit.Extent[2] < 0.008 || fit.Extent[1] > -0.008 || fit.Extent[3] < 0.008 {
		t.Errorf("Locate() extent = %v, want the accuracy circle bounds", fit.Extent)
	}
}

func TestTracker_StateTimezone(t *testing.T) {
	denver := timezone.Zone{Name: "America/Denver", Abbreviation: "MST", OffsetSeconds: -7 * 3600}
	tr := NewTracker(DefaultConfig(), staticZones{zone: denver}, nil, testLogger())

	if tr.State().Timezone != nil {
		t.Error("State().Timezone set before any position")
	}

	if err := tr.Update(reading(39.7, -105, 10)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	state := tr.State()
	if state.Timezone == nil || *state.Timezone != denver {
		t.Errorf("State().Timezone = %v, want %v", state.Timezone, denver)
	}
	if len(state.Layer.Features) != 2 {
		t.Errorf("State().Layer has %d features, want 2", len(state.Layer.Features))
	}
	if state.Style.Src != iconSrc || state.Style.Size != [2]int{27, 55} || !state.Style.RotateWithView {
		t.Errorf("State().Style = %+v", state.Style)
	}

	failing := NewTracker(DefaultConfig(), staticZones{err: timezone.ErrUnknownTimezone}, nil, testLogger())
	_ = failing.Update(reading(0, -140, 10))
	if failing.State().Timezone != nil {
		t.Error("State().Timezone set although the lookup failed")
	}
}

func TestTracker_Place(t *testing.T) {
	places := &staticPlaces{place: &types.Place{Location: types.LocationInfo{Name: "Grand Junction"}}}
	tr := NewTracker(DefaultConfig(), nil, places, testLogger())

	if _, err := tr.Place(context.Background()); !errors.Is(err, ErrNoPosition) {
		t.Errorf("Place() without position error = %v, want %v", err, ErrNoPosition)
	}
	if places.calls != 0 {
		t.Errorf("resolver called %d times without a position", places.calls)
	}

	_ = tr.Update(reading(39.06, -108.55, 10))
	place, err := tr.Place(context.Background())
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if place.Location.Name != "Grand Junction" {
		t.Errorf("Place().Location.Name = %q, want Grand Junction", place.Location.Name)
	}

	places.err = errors.New("upstream down")
	if _, err := tr.Place(context.Background()); err == nil {
		t.Error("Place() expected error from resolver")
	}
}
