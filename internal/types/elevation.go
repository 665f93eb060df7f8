package types

const FeetToMeters = 0.3048

type Elevation struct {
	Feet   float64 `json:"feet" example:"10178.8" doc:"Elevation in feet"`
	Meters float64 `json:"meters" example:"3102.5" doc:"Elevation in meters"`
}

func NewElevationFromMeters(meters float64) Elevation {
	return Elevation{
		Meters: meters,
		Feet:   meters / FeetToMeters,
	}
}
