package formats

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-kml/v3"
)

// KML reads Placemarks at any depth of a KML document.
type KML struct{}

type kmlCoordinates struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoordinates   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoordinates `xml:"innerBoundaryIs>LinearRing"`
}

type kmlMultiGeometry struct {
	Points      []kmlCoordinates   `xml:"Point"`
	LineStrings []kmlCoordinates   `xml:"LineString"`
	Polygons    []kmlPolygon       `xml:"Polygon"`
	Multi       []kmlMultiGeometry `xml:"MultiGeometry"`
}

type kmlPlacemark struct {
	ID           string `xml:"id,attr"`
	Name         string `xml:"name"`
	Description  string `xml:"description"`
	ExtendedData struct {
		Data []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value"`
		} `xml:"Data"`
	} `xml:"ExtendedData"`
	Point         *kmlCoordinates   `xml:"Point"`
	LineString    *kmlCoordinates   `xml:"LineString"`
	Polygon       *kmlPolygon       `xml:"Polygon"`
	MultiGeometry *kmlMultiGeometry `xml:"MultiGeometry"`
}

func (KML) Name() string {
	return "kml"
}

func (KML) ReadFeatures(data []byte) ([]*geojson.Feature, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		features []*geojson.Feature
		sawKML   bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode KML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "kml":
			sawKML = true
		case "Placemark":
			var pm kmlPlacemark
			if err := dec.DecodeElement(&pm, &start); err != nil {
				return nil, fmt.Errorf("failed to decode Placemark: %w", err)
			}
			f, err := pm.feature()
			if err != nil {
				return nil, err
			}
			if f != nil {
				features = append(features, f)
			}
		}
	}

	if !sawKML {
		return nil, errors.New("missing kml root element")
	}
	return features, nil
}

func (pm kmlPlacemark) feature() (*geojson.Feature, error) {
	var (
		g   orb.Geometry
		err error
	)
	switch {
	case pm.Point != nil:
		g, err = parsePoint(pm.Point.Coordinates)
	case pm.LineString != nil:
		g, err = parseLineString(pm.LineString.Coordinates)
	case pm.Polygon != nil:
		g, err = pm.Polygon.geometry()
	case pm.MultiGeometry != nil:
		g, err = pm.MultiGeometry.geometry()
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("placemark %q: %w", pm.Name, err)
	}

	f := geojson.NewFeature(g)
	if pm.ID != "" {
		f.ID = pm.ID
	}
	if pm.Name != "" {
		f.Properties["name"] = pm.Name
	}
	if pm.Description != "" {
		f.Properties["description"] = strings.TrimSpace(pm.Description)
	}
	for _, d := range pm.ExtendedData.Data {
		if d.Name != "" {
			f.Properties[d.Name] = d.Value
		}
	}
	return f, nil
}

func (p kmlPolygon) geometry() (orb.Polygon, error) {
	outer, err := parseRing(p.Outer.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("outer boundary: %w", err)
	}
	poly := orb.Polygon{outer}
	for i, inner := range p.Inner {
		ring, err := parseRing(inner.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("inner boundary %d: %w", i, err)
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// geometry collapses homogeneous multi geometries into Multi* types and keeps
// mixed ones as a collection.
func (m kmlMultiGeometry) geometry() (orb.Geometry, error) {
	var parts []orb.Geometry
	for _, p := range m.Points {
		pt, err := parsePoint(p.Coordinates)
		if err != nil {
			return nil, err
		}
		parts = append(parts, pt)
	}
	for _, l := range m.LineStrings {
		ls, err := parseLineString(l.Coordinates)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ls)
	}
	for _, p := range m.Polygons {
		poly, err := p.geometry()
		if err != nil {
			return nil, err
		}
		parts = append(parts, poly)
	}
	for _, nested := range m.Multi {
		g, err := nested.geometry()
		if err != nil {
			return nil, err
		}
		parts = append(parts, g)
	}

	if len(parts) == 0 {
		return nil, errors.New("empty MultiGeometry")
	}

	switch {
	case len(m.Points) == len(parts):
		mp := make(orb.MultiPoint, 0, len(parts))
		for _, p := range parts {
			mp = append(mp, p.(orb.Point))
		}
		return mp, nil
	case len(m.LineStrings) == len(parts):
		mls := make(orb.MultiLineString, 0, len(parts))
		for _, p := range parts {
			mls = append(mls, p.(orb.LineString))
		}
		return mls, nil
	case len(m.Polygons) == len(parts):
		mp := make(orb.MultiPolygon, 0, len(parts))
		for _, p := range parts {
			mp = append(mp, p.(orb.Polygon))
		}
		return mp, nil
	default:
		return orb.Collection(parts), nil
	}
}

// parseCoordinates reads "lon,lat[,alt]" tuples separated by whitespace.
// Altitude is dropped.
func parseCoordinates(s string) ([]orb.Point, error) {
	fields := strings.Fields(s)
	points := make([]orb.Point, 0, len(fields))
	for _, tuple := range fields {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("invalid coordinate tuple %q", tuple)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q: %w", tuple, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q: %w", tuple, err)
		}
		points = append(points, orb.Point{lon, lat})
	}
	return points, nil
}

func parsePoint(s string) (orb.Point, error) {
	points, err := parseCoordinates(s)
	if err != nil {
		return orb.Point{}, err
	}
	if len(points) != 1 {
		return orb.Point{}, fmt.Errorf("point needs exactly one coordinate, got %d", len(points))
	}
	return points[0], nil
}

func parseLineString(s string) (orb.LineString, error) {
	points, err := parseCoordinates(s)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("line needs at least 2 coordinates, got %d", len(points))
	}
	return orb.LineString(points), nil
}

func parseRing(s string) (orb.Ring, error) {
	points, err := parseCoordinates(s)
	if err != nil {
		return nil, err
	}
	ring := orb.Ring(points)
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 {
		return nil, fmt.Errorf("ring needs at least 4 coordinates, got %d", len(ring))
	}
	return ring, nil
}

// FillColorFunc returns the fill color of a feature for KML export
type FillColorFunc func(f *geojson.Feature) color.Color

// WriteKML writes features as Placemarks of a single KML Document. Polygonal
// features get an inline PolyStyle with the color returned by fill.
func WriteKML(w io.Writer, name string, features []*geojson.Feature, fill FillColorFunc) error {
	elements := []kml.Element{kml.Name(name)}
	for _, f := range features {
		pm, err := kmlPlacemarkFor(f, fill)
		if err != nil {
			return err
		}
		if pm != nil {
			elements = append(elements, pm)
		}
	}

	doc := kml.KML(kml.Document(elements...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("failed to write KML: %w", err)
	}
	return nil
}

func kmlPlacemarkFor(f *geojson.Feature, fill FillColorFunc) (kml.Element, error) {
	geom, err := kmlGeometry(f.Geometry)
	if err != nil {
		return nil, err
	}
	if geom == nil {
		return nil, nil
	}

	var children []kml.Element
	if name, ok := f.Properties["name"].(string); ok && name != "" {
		children = append(children, kml.Name(name))
	} else if id, ok := f.ID.(string); ok && id != "" {
		children = append(children, kml.Name(id))
	}
	if desc, ok := f.Properties["description"].(string); ok && desc != "" {
		children = append(children, kml.Description(desc))
	}
	if fill != nil {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			children = append(children, kml.Style(
				kml.LineStyle(kml.Color(color.RGBA{R: 255, G: 255, B: 255, A: 204})),
				kml.PolyStyle(kml.Color(fill(f))),
			))
		}
	}
	children = append(children, geom)

	return kml.Placemark(children...), nil
}

func kmlGeometry(g orb.Geometry) (kml.Element, error) {
	switch g := g.(type) {
	case nil:
		return nil, nil
	case orb.Point:
		return kml.Point(kml.Coordinates(kmlCoordinate(g))), nil
	case orb.LineString:
		return kml.LineString(kml.Coordinates(kmlCoordinateList(g)...)), nil
	case orb.Polygon:
		return kmlPolygonElement(g), nil
	case orb.MultiPoint:
		parts := make([]kml.Element, 0, len(g))
		for _, p := range g {
			parts = append(parts, kml.Point(kml.Coordinates(kmlCoordinate(p))))
		}
		return kml.MultiGeometry(parts...), nil
	case orb.MultiLineString:
		parts := make([]kml.Element, 0, len(g))
		for _, ls := range g {
			parts = append(parts, kml.LineString(kml.Coordinates(kmlCoordinateList(ls)...)))
		}
		return kml.MultiGeometry(parts...), nil
	case orb.MultiPolygon:
		parts := make([]kml.Element, 0, len(g))
		for _, p := range g {
			parts = append(parts, kmlPolygonElement(p))
		}
		return kml.MultiGeometry(parts...), nil
	case orb.Collection:
		parts := make([]kml.Element, 0, len(g))
		for _, sub := range g {
			el, err := kmlGeometry(sub)
			if err != nil {
				return nil, err
			}
			if el != nil {
				parts = append(parts, el)
			}
		}
		return kml.MultiGeometry(parts...), nil
	default:
		return nil, fmt.Errorf("%w: KML cannot encode %s", ErrUnsupportedFormat, g.GeoJSONType())
	}
}

func kmlPolygonElement(p orb.Polygon) kml.Element {
	if len(p) == 0 {
		return kml.Polygon()
	}
	children := []kml.Element{
		kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(kmlCoordinateList(p[0])...))),
	}
	for _, inner := range p[1:] {
		children = append(children, kml.InnerBoundaryIs(kml.LinearRing(kml.Coordinates(kmlCoordinateList(inner)...))))
	}
	return kml.Polygon(children...)
}

func kmlCoordinate(p orb.Point) kml.Coordinate {
	return kml.Coordinate{Lon: p.Lon(), Lat: p.Lat()}
}

func kmlCoordinateList[T ~[]orb.Point](points T) []kml.Coordinate {
	coords := make([]kml.Coordinate, len(points))
	for i, p := range points {
		coords[i] = kmlCoordinate(p)
	}
	return coords
}
