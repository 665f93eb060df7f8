package main

import (
	"fmt"
	"log/slog"

	"areamap/internal/areacolor"
	"areamap/internal/colormap"
	"areamap/internal/config"
	"areamap/internal/features"
	"areamap/internal/geolocation"
	"areamap/internal/geometry"
	"areamap/internal/location"
	"areamap/internal/providers/openmeteo"
	"areamap/internal/providers/openstreetmap"
	"areamap/internal/providers/usgs"
	"areamap/internal/timezone"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	_ "areamap/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	mapper         *areacolor.Mapper
	featureService features.Service
	tracker        *geolocation.Tracker
	cache          *redis.Client
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Build the area color ramp
	ramp, err := colormap.New(cfg.Colors.Colormap, cfg.Colors.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to build color ramp: %w", err)
	}
	mapper, err := areacolor.NewMapper(cfg.AreaColor(), ramp)
	if err != nil {
		return nil, fmt.Errorf("failed to create area mapper: %w", err)
	}
	styler := areacolor.NewStyler(mapper, geometry.NewAreaService(cfg.Area.Radius))

	// Timezones are optional, the position layer works without them
	zones, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	}

	cache := cfg.NewRedisClient()
	if cache == nil {
		logger.Info("reverse geocode cache disabled, no redis address configured")
	}

	var elevation []location.ElevationProvider
	if !cfg.Elevation.Disabled {
		elevation = []location.ElevationProvider{
			usgs.NewClient(cfg.Elevation.USGSBaseURL, logger),
			openmeteo.NewElevationClient(cfg.Elevation.OpenMeteoBaseURL, logger),
		}
	}
	places := location.NewLocationServiceWithProviders(
		openstreetmap.NewClient(cfg.Nominatim.BaseURL, logger),
		elevation,
		cache,
		cfg.PlaceTTL(),
		logger,
	)

	app := newApp(
		logger,
		mapper,
		features.NewFeatureService(features.NewSource(), styler, logger),
		geolocation.NewTracker(cfg.Tracker(), zones, places, logger),
	)
	app.cfg = cfg
	app.cache = cache

	logger.Info("application initialized",
		"colormap", ramp.Name(),
		"steps", ramp.Len(),
		"min_area", cfg.Colors.Min,
		"max_area", cfg.Colors.Max,
	)

	return app, nil
}

func newApp(logger *slog.Logger, mapper *areacolor.Mapper, featureService features.Service, tracker *geolocation.Tracker) *App {
	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		mapper:         mapper,
		featureService: featureService,
		tracker:        tracker,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases external connections
func (app *App) Close() error {
	if app.cache != nil {
		return app.cache.Close()
	}
	return nil
}
