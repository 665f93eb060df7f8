package geolocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"areamap/internal/features"
	"areamap/internal/geometry"
	"areamap/internal/timezone"
	"areamap/internal/types"

	"github.com/paulmach/orb/geojson"
)

const (
	AccuracyFeatureID = "accuracy"
	PositionFeatureID = "position"

	iconFill = "rgba(0, 0, 255, 0.2)"
	iconSrc  = "data/location-heading.svg"
)

// PlaceResolver describes the place at a coordinate
type PlaceResolver interface {
	GetPlace(ctx context.Context, latitude, longitude float64) (*types.Place, error)
}

var (
	ErrNoPosition      = errors.New("no position available")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidHeading  = errors.New("invalid heading")
)

// Config controls the accuracy circle and the locate behavior
type Config struct {
	CircleVertices int
	MaxZoom        int
	FitDuration    time.Duration
}

// DefaultConfig returns a 32 vertex circle and a 500ms fit capped at zoom 18
func DefaultConfig() Config {
	return Config{
		CircleVertices: geometry.DefaultCircleVertices,
		MaxZoom:        18,
		FitDuration:    500 * time.Millisecond,
	}
}

// Tracker keeps the live position layer: an accuracy circle and a point,
// plus the compass heading rotating the position icon.
type Tracker struct {
	cfg      Config
	source   *features.Source
	zones    timezone.Service
	places   PlaceResolver
	logger   *slog.Logger
	mu       sync.RWMutex
	position *Position
	heading  *float64
	lastErr  *PositionError
}

// NewTracker creates a tracker. zones and places may be nil, in which case
// timezone and place lookups are unavailable.
func NewTracker(cfg Config, zones timezone.Service, places PlaceResolver, logger *slog.Logger) *Tracker {
	if cfg.CircleVertices < 3 {
		cfg.CircleVertices = geometry.DefaultCircleVertices
	}
	return &Tracker{
		cfg:    cfg,
		source: features.NewSource(),
		zones:  zones,
		places: places,
		logger: logger.With("component", "geolocation-tracker"),
	}
}

// Source returns the position layer
func (t *Tracker) Source() *features.Source {
	return t.source
}

// Update replaces the position layer with the accuracy circle and point of pos.
// A successful reading clears the last reported error.
func (t *Tracker) Update(pos Position) error {
	if !pos.Coords.Valid() {
		return fmt.Errorf("%w: coordinates (%v, %v) out of range", ErrInvalidPosition, pos.Coords.Latitude, pos.Coords.Longitude)
	}
	if math.IsNaN(pos.Accuracy) || math.IsInf(pos.Accuracy, 0) || pos.Accuracy < 0 {
		return fmt.Errorf("%w: accuracy must be a non-negative number of meters", ErrInvalidPosition)
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now().UTC()
	}

	center := pos.Coords.Point()
	accuracy := geojson.NewFeature(geometry.Circle(center, pos.Accuracy, t.cfg.CircleVertices))
	accuracy.ID = AccuracyFeatureID
	accuracy.Properties["accuracy"] = pos.Accuracy
	point := geojson.NewFeature(center)
	point.ID = PositionFeatureID

	// position and layer change together so readers never see them disagree
	t.mu.Lock()
	t.position = &pos
	t.lastErr = nil
	t.source.Replace(accuracy, point)
	t.mu.Unlock()

	t.logger.Debug("position updated",
		"latitude", pos.Coords.Latitude,
		"longitude", pos.Coords.Longitude,
		"accuracy", pos.Accuracy,
	)
	return nil
}

// ReportError records a failed reading. The layer keeps its last features.
func (t *Tracker) ReportError(perr PositionError) {
	t.mu.Lock()
	t.lastErr = &perr
	t.mu.Unlock()

	t.logger.Warn("geolocation error",
		"code", perr.Code,
		"message", perr.Message,
	)
}

// SetHeading sets the compass heading in degrees, normalized to [0, 360)
func (t *Tracker) SetHeading(degrees float64) error {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidHeading, degrees)
	}
	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}

	t.mu.Lock()
	t.heading = &h
	t.mu.Unlock()
	return nil
}

// Rotation returns the icon rotation in radians for the current heading
func (t *Tracker) Rotation() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.heading == nil {
		return 0
	}
	return math.Pi / 180 * *t.heading
}

// Locate returns how to fit the view on the position layer
func (t *Tracker) Locate() (*Fit, error) {
	bound, ok := t.source.Extent()
	if !ok {
		return nil, ErrNoPosition
	}
	return &Fit{
		Extent:     [4]float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()},
		MaxZoom:    t.cfg.MaxZoom,
		DurationMs: t.cfg.FitDuration.Milliseconds(),
	}, nil
}

// State returns a snapshot of the position layer and its style
func (t *Tracker) State() State {
	t.mu.RLock()
	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, t.source.Features()...)
	state := State{
		Layer: fc,
		Style: IconStyle{
			Fill:           iconFill,
			Src:            iconSrc,
			Size:           [2]int{27, 55},
			RotateWithView: true,
		},
	}
	if t.position != nil {
		pos := *t.position
		state.Position = &pos
	}
	if t.heading != nil {
		h := *t.heading
		state.Heading = &h
		state.Style.Rotation = math.Pi / 180 * h
	}
	if t.lastErr != nil {
		state.Error = t.lastErr.Error()
	}
	t.mu.RUnlock()

	if state.Position != nil && t.zones != nil {
		zone, err := t.zones.Lookup(state.Position.Coords.Longitude, state.Position.Coords.Latitude, state.Position.Timestamp)
		if err != nil {
			t.logger.Debug("no timezone for position", "error", err)
		} else {
			state.Timezone = &zone
		}
	}

	return state
}

// Place reverse geocodes the current position
func (t *Tracker) Place(ctx context.Context) (*types.Place, error) {
	t.mu.RLock()
	pos := t.position
	t.mu.RUnlock()

	if pos == nil {
		return nil, ErrNoPosition
	}
	if t.places == nil {
		return nil, errors.New("place lookup is not configured")
	}

	place, err := t.places.GetPlace(ctx, pos.Coords.Latitude, pos.Coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve place: %w", err)
	}
	return place, nil
}
