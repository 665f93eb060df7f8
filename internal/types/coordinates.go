package types

import "github.com/paulmach/orb"

// Coords is a WGS84 position in decimal degrees
type Coords struct {
	Latitude  float64 `json:"latitude" example:"39.11539" doc:"Latitude in decimal degrees"`
	Longitude float64 `json:"longitude" example:"-107.6584" doc:"Longitude in decimal degrees"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point returns the coordinate as an orb point (longitude first)
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the coordinate lies within WGS84 bounds
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
