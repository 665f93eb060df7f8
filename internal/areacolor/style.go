package areacolor

import (
	"math"

	"areamap/internal/geometry"

	"github.com/paulmach/orb/geojson"
)

// StrokeColor outlines every area polygon
const StrokeColor = "rgba(255,255,255,0.8)"

// Style is the resolved display style of a feature
type Style struct {
	Fill      string  `json:"fill" example:"#e6d200" doc:"Fill color"`
	Stroke    string  `json:"stroke" example:"rgba(255,255,255,0.8)" doc:"Stroke color"`
	RampIndex int     `json:"ramp_index" example:"35" doc:"Index into the color ramp"`
	Area      float64 `json:"area" example:"1.0e13" doc:"Spherical area in square meters"`
}

// Styler resolves the style of a feature. It is called for every feature each
// time the feature set is rendered or exported.
type Styler interface {
	StyleFor(feature *geojson.Feature) Style
}

type areaStyler struct {
	mapper *Mapper
	areas  geometry.AreaService
}

// NewStyler creates a Styler that colors features by area
func NewStyler(mapper *Mapper, areas geometry.AreaService) Styler {
	return &areaStyler{
		mapper: mapper,
		areas:  areas,
	}
}

func (s *areaStyler) StyleFor(feature *geojson.Feature) Style {
	var area float64
	if feature != nil {
		area = s.areas.Area(feature.Geometry)
	}

	index := s.mapper.Index(area)
	if math.IsNaN(area) {
		area = 0
	} else if math.IsInf(area, 0) {
		area = math.Copysign(math.MaxFloat64, area)
	}

	return Style{
		Fill:      s.mapper.Ramp().At(index).Hex(),
		Stroke:    StrokeColor,
		RampIndex: index,
		Area:      area,
	}
}
