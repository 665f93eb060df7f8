package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name" example:"Aspen" doc:"Locality name"`
	DisplayName string `json:"display_name" example:"Aspen, Pitkin County, Colorado, United States" doc:"Full place label"`
	County      string `json:"county" example:"Pitkin County" doc:"County name"`
	State       string `json:"state" example:"Colorado" doc:"State or province name"`
	Country     string `json:"country" example:"United States" doc:"Country name"`
	CountryCode string `json:"country_code" example:"us" doc:"ISO country code"`
}

// Place is what is known about a coordinate: where it is and how high
type Place struct {
	Coordinates Coords       `json:"coordinates"`
	Elevation   *Elevation   `json:"elevation,omitempty" doc:"Ground elevation, absent when no provider covers the point"`
	Location    LocationInfo `json:"location"`
}
