package geometry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/project"
)

const (
	// MeanEarthRadius is the mean radius of the WGS84 ellipsoid in meters
	MeanEarthRadius = 6371008.8

	CRS4326 = "EPSG:4326"
	CRS3857 = "EPSG:3857"

	DefaultCircleVertices = 32
)

var ErrUnsupportedCRS = errors.New("unsupported coordinate reference system")

// AreaService computes the surface area of a geometry
type AreaService interface {
	// Area returns the area in square meters
	Area(g orb.Geometry) float64
}

type sphericalArea struct {
	radius float64
}

// NewAreaService returns an AreaService computing areas on a sphere of the given
// radius. A non-positive radius falls back to MeanEarthRadius.
func NewAreaService(radius float64) AreaService {
	if radius <= 0 {
		radius = MeanEarthRadius
	}
	return &sphericalArea{radius: radius}
}

// Area returns the spherical area of polygonal geometries. Points and lines have
// no area. Coordinates are expected in EPSG:4326.
func (s *sphericalArea) Area(g orb.Geometry) float64 {
	if g == nil {
		return 0
	}
	// geo.Area works on a sphere of orb.EarthRadius; areas scale with r².
	scale := s.radius / orb.EarthRadius
	return geo.Area(g) * scale * scale
}

// ToWGS84 returns g expressed in EPSG:4326. The input is never modified.
func ToWGS84(g orb.Geometry, crs string) (orb.Geometry, error) {
	switch strings.ToUpper(strings.TrimSpace(crs)) {
	case "", CRS4326, "CRS:84", "WGS84":
		return g, nil
	case CRS3857, "EPSG:900913":
		return project.Geometry(orb.Clone(g), project.Mercator.ToWGS84), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCRS, crs)
	}
}

// FromWGS84 returns g expressed in crs. The input is never modified.
func FromWGS84(g orb.Geometry, crs string) (orb.Geometry, error) {
	switch strings.ToUpper(strings.TrimSpace(crs)) {
	case "", CRS4326, "CRS:84", "WGS84":
		return g, nil
	case CRS3857, "EPSG:900913":
		return project.Geometry(orb.Clone(g), project.WGS84.ToMercator), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCRS, crs)
	}
}

// Circle approximates a geodesic circle around center with a closed polygon ring
// of the given number of vertices.
func Circle(center orb.Point, radius float64, vertices int) orb.Polygon {
	if vertices < 3 {
		vertices = DefaultCircleVertices
	}

	ring := make(orb.Ring, 0, vertices+1)
	for i := 0; i < vertices; i++ {
		bearing := 360.0 * float64(i) / float64(vertices)
		ring = append(ring, geo.PointAtBearingAndDistance(center, bearing, radius))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// Extent returns the bound covering all geometries. ok is false when no
// non-nil geometry was given.
func Extent(geoms ...orb.Geometry) (bound orb.Bound, ok bool) {
	for _, g := range geoms {
		if g == nil {
			continue
		}
		if !ok {
			bound = g.Bound()
			ok = true
			continue
		}
		bound = bound.Union(g.Bound())
	}
	return bound, ok
}
