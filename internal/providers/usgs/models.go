package usgs

import "encoding/json"

// noDataValue is returned by EPQS for points outside the elevation dataset
const noDataValue = -1000000

// ElevationPointAPIResponse is the body of an EPQS point query
type ElevationPointAPIResponse struct {
	Location struct {
		X                float64 `json:"x"`
		Y                float64 `json:"y"`
		SpatialReference struct {
			Wkid int `json:"wkid"`
		} `json:"spatialReference"`
	} `json:"location"`
	LocationID int         `json:"locationId"`
	Value      json.Number `json:"value"` // sent as a string by some EPQS versions
	RasterID   int         `json:"rasterId"`
	Resolution float64     `json:"resolution"`
}
