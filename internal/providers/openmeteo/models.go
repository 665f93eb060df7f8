package openmeteo

// ElevationAPIResponse is the body of an elevation request. One value is
// returned per requested coordinate, in meters.
type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
