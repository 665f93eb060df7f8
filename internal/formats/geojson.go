package formats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
)

// GeoJSON reads FeatureCollections, single Features and bare Geometries.
type GeoJSON struct{}

func (GeoJSON) Name() string {
	return "geojson"
}

func (GeoJSON) ReadFeatures(data []byte) ([]*geojson.Feature, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FeatureCollection: %w", err)
		}
		features := make([]*geojson.Feature, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				features = append(features, f)
			}
		}
		return features, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Feature: %w", err)
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []*geojson.Feature{f}, nil
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", head.Type, err)
		}
		return []*geojson.Feature{geojson.NewFeature(g.Geometry())}, nil
	default:
		return nil, fmt.Errorf("unknown GeoJSON type %q", head.Type)
	}
}

// WriteGeoJSON writes features as a FeatureCollection
func WriteGeoJSON(w io.Writer, features []*geojson.Feature) error {
	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, features...)

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}
