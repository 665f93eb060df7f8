package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"areamap/internal/areacolor"
	"areamap/internal/colormap"
	"areamap/internal/geolocation"
	"areamap/internal/geometry"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Colors      ColorsConfig
	Area        AreaConfig
	Geolocation GeolocationConfig
	Redis       RedisConfig
	Nominatim   NominatimConfig
	Elevation   ElevationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ColorsConfig controls the area to color ramp
type ColorsConfig struct {
	Colormap string
	Min      float64 // square meters
	Max      float64 // square meters
	Steps    int
}

// AreaConfig controls the geodesic area measure
type AreaConfig struct {
	Radius float64 // meters
}

// GeolocationConfig controls the position layer
type GeolocationConfig struct {
	CircleVertices int
	MaxZoom        int
	FitDurationMs  int
}

// RedisConfig holds the reverse geocode cache connection. An empty Addr disables caching.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// NominatimConfig holds the reverse geocoding endpoint
type NominatimConfig struct {
	BaseURL string
}

// ElevationConfig holds the elevation endpoints, queried in order: USGS first
// (US only, high resolution), then Open-Meteo
type ElevationConfig struct {
	USGSBaseURL      string
	OpenMeteoBaseURL string
	Disabled         bool
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// Values already present in the environment win over .env
	_ = godotenv.Load(".env")

	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.areamap")

	setDefaults()

	// Read from environment variables, e.g. AREAMAP_COLORS_MAX
	viper.SetEnvPrefix("AREAMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("colors.colormap", colormap.DefaultName)
	viper.SetDefault("colors.min", areacolor.DefaultMin)
	viper.SetDefault("colors.max", areacolor.DefaultMax)
	viper.SetDefault("colors.steps", areacolor.DefaultSteps)
	viper.SetDefault("area.radius", geometry.MeanEarthRadius)
	viper.SetDefault("geolocation.circlevertices", geometry.DefaultCircleVertices)
	viper.SetDefault("geolocation.maxzoom", 18)
	viper.SetDefault("geolocation.fitdurationms", 500)
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlseconds", 3600)
	viper.SetDefault("nominatim.baseurl", "")
	viper.SetDefault("elevation.usgsbaseurl", "")
	viper.SetDefault("elevation.openmeteobaseurl", "")
	viper.SetDefault("elevation.disabled", false)
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if err := c.AreaColor().Validate(); err != nil {
		return err
	}
	if c.Area.Radius <= 0 {
		return fmt.Errorf("area radius must be positive, got %v", c.Area.Radius)
	}
	if c.Redis.TTLSeconds < 0 {
		return fmt.Errorf("redis ttl must not be negative, got %d", c.Redis.TTLSeconds)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// AreaColor returns the mapper range and resolution
func (c *Config) AreaColor() areacolor.Config {
	return areacolor.Config{
		Min:   c.Colors.Min,
		Max:   c.Colors.Max,
		Steps: c.Colors.Steps,
	}
}

// Tracker returns the position layer settings
func (c *Config) Tracker() geolocation.Config {
	return geolocation.Config{
		CircleVertices: c.Geolocation.CircleVertices,
		MaxZoom:        c.Geolocation.MaxZoom,
		FitDuration:    time.Duration(c.Geolocation.FitDurationMs) * time.Millisecond,
	}
}

// PlaceTTL returns how long reverse geocode results are cached
func (c *Config) PlaceTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// NewRedisClient returns nil when no address is configured
func (c *Config) NewRedisClient() *redis.Client {
	if c.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
