package geolocation

import (
	"time"

	"areamap/internal/timezone"
	"areamap/internal/types"

	"github.com/paulmach/orb/geojson"
)

// Position is a single reading from the device's geolocation sensor
type Position struct {
	Coords    types.Coords `json:"coords"`
	Accuracy  float64      `json:"accuracy" example:"25" doc:"Accuracy radius in meters"`
	Timestamp time.Time    `json:"timestamp" doc:"Time of the reading"`
}

// PositionError codes as reported by browsers
const (
	PermissionDenied    = 1
	PositionUnavailable = 2
	Timeout             = 3
)

// PositionError is a failed geolocation reading
type PositionError struct {
	Code    int    `json:"code" example:"1" doc:"1 permission denied, 2 position unavailable, 3 timeout"`
	Message string `json:"message" example:"User denied Geolocation" doc:"Browser supplied message"`
}

func (e PositionError) Error() string {
	return "ERROR: " + e.Message
}

// IconStyle is the style of the position layer
type IconStyle struct {
	Fill           string  `json:"fill" example:"rgba(0, 0, 255, 0.2)" doc:"Accuracy circle fill"`
	Src            string  `json:"src" example:"data/location-heading.svg" doc:"Position icon"`
	Size           [2]int  `json:"size" doc:"Icon width and height in pixels"`
	RotateWithView bool    `json:"rotate_with_view" doc:"Rotate the icon with the map view"`
	Rotation       float64 `json:"rotation" example:"1.5708" doc:"Icon rotation in radians"`
}

// Fit describes how the view should be fitted to the position layer
type Fit struct {
	Extent     [4]float64 `json:"extent" doc:"minLon, minLat, maxLon, maxLat"`
	MaxZoom    int        `json:"max_zoom" example:"18" doc:"Maximum zoom level"`
	DurationMs int64      `json:"duration_ms" example:"500" doc:"Animation duration in milliseconds"`
}

// State is a snapshot of the position layer
type State struct {
	Layer    *geojson.FeatureCollection `json:"layer" swaggertype:"object" doc:"Accuracy circle and position point"`
	Style    IconStyle                  `json:"style"`
	Position *Position                  `json:"position,omitempty"`
	Heading  *float64                   `json:"heading,omitempty" doc:"Compass heading in degrees"`
	Error    string                     `json:"error,omitempty" example:"ERROR: User denied Geolocation" doc:"Last geolocation error shown to the user"`
	Timezone *timezone.Zone             `json:"timezone,omitempty"`
}
