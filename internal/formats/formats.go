// Package formats reads and writes vector feature files dropped onto or
// exported from the map.
package formats

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

var (
	ErrNoFeatures        = errors.New("no features found")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format reads features from raw file contents. Coordinates are returned in EPSG:4326.
type Format interface {
	Name() string
	ReadFeatures(data []byte) ([]*geojson.Feature, error)
}

// Default returns the formats accepted for dropped files, in detection order
func Default() []Format {
	return []Format{GeoJSON{}, KML{}}
}

// Detect tries every format in order and returns the features of the first one
// yielding at least one feature. Formats that fail to parse are skipped.
func Detect(data []byte, formats ...Format) ([]*geojson.Feature, Format, error) {
	if len(formats) == 0 {
		formats = Default()
	}

	var errs []error
	for _, f := range formats {
		features, err := f.ReadFeatures(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name(), err))
			continue
		}
		if len(features) > 0 {
			return features, f, nil
		}
	}

	if len(errs) == len(formats) {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, errors.Join(errs...))
	}
	return nil, nil, ErrNoFeatures
}

// ByName returns the format registered under name
func ByName(name string) (Format, error) {
	for _, f := range Default() {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}
