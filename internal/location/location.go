package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"areamap/internal/providers/openstreetmap"
	"areamap/internal/types"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// Service provides place and elevation data for a coordinate
type Service interface {
	// GetPlace retrieves the locality and ground elevation at a coordinate
	GetPlace(ctx context.Context, latitude, longitude float64) (*types.Place, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	Name() string
	ElevationMeters(ctx context.Context, latitude, longitude float64) (float64, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

// Cache is the subset of the redis client used to cache places
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// locationService implements the Service interface
type locationService struct {
	elevationProviders []ElevationProvider
	locationProvider   ReverseGeocodeProvider
	cache              Cache
	ttl                time.Duration
	logger             *slog.Logger
}

// NewLocationServiceWithProviders creates a location service. Elevation
// providers are tried in order until one covers the point. A nil cache
// disables caching.
func NewLocationServiceWithProviders(
	locationProvider ReverseGeocodeProvider,
	elevationProviders []ElevationProvider,
	cache Cache,
	ttl time.Duration,
	logger *slog.Logger,
) Service {
	if c, ok := cache.(*redis.Client); ok && c == nil {
		cache = nil
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &locationService{
		elevationProviders: elevationProviders,
		locationProvider:   locationProvider,
		cache:              cache,
		ttl:                ttl,
		logger:             logger.With("component", "location-service"),
	}
}

// GetPlace calls the providers in parallel. Missing elevation is not an error,
// a failed reverse lookup is.
func (s *locationService) GetPlace(ctx context.Context, latitude, longitude float64) (*types.Place, error) {
	coords := types.NewCoords(latitude, longitude)
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: lat=%f, lon=%f", ErrInvalidCoordinates, latitude, longitude)
	}

	key := cacheKey(latitude, longitude)
	if place, ok := s.cached(ctx, key); ok {
		// entries are shared by every reading rounding to the same key
		place.Coordinates = coords
		return place, nil
	}

	var (
		wg           sync.WaitGroup
		elevation    *types.Elevation
		locationResp *openstreetmap.ReverseAPIResponse
		locationErr  error
	)

	// Launch both lookups in parallel
	wg.Add(2)

	go func() {
		defer wg.Done()
		elevation = s.elevation(ctx, latitude, longitude)
	}()

	go func() {
		defer wg.Done()
		locationResp, locationErr = s.locationProvider.Reverse(ctx, latitude, longitude)
		if locationErr != nil {
			locationErr = fmt.Errorf("failed to get location: %w", locationErr)
		}
	}()

	wg.Wait()

	if locationErr != nil {
		return nil, locationErr
	}

	locationInfo, err := translateLocationInfo(locationResp)
	if err != nil {
		return nil, err
	}

	place := &types.Place{
		Coordinates: coords,
		Elevation:   elevation,
		Location:    locationInfo,
	}
	s.store(ctx, key, place)

	return place, nil
}

// elevation returns the first value any provider has for the point
func (s *locationService) elevation(ctx context.Context, latitude, longitude float64) *types.Elevation {
	for _, p := range s.elevationProviders {
		meters, err := p.ElevationMeters(ctx, latitude, longitude)
		if err != nil {
			s.logger.Debug("elevation provider failed",
				"provider", p.Name(),
				"latitude", latitude,
				"longitude", longitude,
				"error", err,
			)
			continue
		}
		e := types.NewElevationFromMeters(meters)
		return &e
	}

	if len(s.elevationProviders) > 0 {
		s.logger.Warn("no elevation for point", "latitude", latitude, "longitude", longitude)
	}
	return nil
}

func (s *locationService) cached(ctx context.Context, key string) (*types.Place, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("place cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var place types.Place
	if err := json.Unmarshal([]byte(raw), &place); err != nil {
		s.logger.Warn("discarding malformed cache entry", "key", key, "error", err)
		return nil, false
	}

	s.logger.Debug("place cache hit", "key", key)
	return &place, true
}

func (s *locationService) store(ctx context.Context, key string, place *types.Place) {
	if s.cache == nil {
		return
	}

	b, err := json.Marshal(place)
	if err != nil {
		s.logger.Warn("place cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl).Err(); err != nil {
		s.logger.Warn("place cache write failed", "key", key, "error", err)
	}
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.ReverseAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	// Prefer the settlement over the full label
	name := resp.Locality()
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		DisplayName: resp.DisplayName,
		County:      resp.Address.County,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}, nil
}

// cacheKey rounds to three decimals (about 100m) so nearby readings share an entry
func cacheKey(latitude, longitude float64) string {
	return fmt.Sprintf("areamap:place:%.3f:%.3f", latitude, longitude)
}
