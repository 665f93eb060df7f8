package features

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"areamap/internal/areacolor"
	"areamap/internal/formats"
	"areamap/internal/geometry"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const downloadPrefix = "data:text/json;charset=utf-8,"

var (
	ErrFeatureNotFound   = errors.New("feature not found")
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrUnsupportedFormat = formats.ErrUnsupportedFormat
	ErrNoFeatures        = formats.ErrNoFeatures
)

// View is a feature together with its resolved style
type View struct {
	ID         string             `json:"id" example:"9b2f0c9e-6c1c-4d5e-9a57-1d3f1b1f6a10" doc:"Feature identifier"`
	Geometry   *geojson.Geometry  `json:"geometry" swaggertype:"object" doc:"GeoJSON geometry in EPSG:4326"`
	Properties geojson.Properties `json:"properties" swaggertype:"object" doc:"Feature properties"`
	Style      areacolor.Style    `json:"style" doc:"Resolved display style"`
}

// Service manages the editable vector layer: dropped files, drawn and modified
// polygons, clearing and export.
type Service interface {
	Import(filename string, data []byte) ([]View, error)
	Draw(g orb.Geometry, crs string) (*View, error)
	Modify(id string, g orb.Geometry, crs string) (*View, error)
	Remove(id string) error
	Clear()
	List() []View
	Get(id string) (*View, error)
	FeatureAt(lon, lat float64) (*View, error)
	Export(format string) ([]byte, error)
	DownloadHref() string
}

type featureService struct {
	source  *Source
	styler  areacolor.Styler
	formats []formats.Format
	logger  *slog.Logger

	mu          sync.RWMutex
	href        string
	hrefVersion int
}

// NewFeatureService creates a service over source. The download link is kept
// in sync with the source through a change listener.
func NewFeatureService(source *Source, styler areacolor.Styler, logger *slog.Logger) Service {
	return NewFeatureServiceWithFormats(source, styler, logger, formats.Default()...)
}

// NewFeatureServiceWithFormats creates a service accepting only the given
// formats for dropped files, tried in order.
func NewFeatureServiceWithFormats(source *Source, styler areacolor.Styler, logger *slog.Logger, fs ...formats.Format) Service {
	s := &featureService{
		source:  source,
		styler:  styler,
		formats: fs,
		logger:  logger.With("component", "feature-service"),
	}
	source.OnChange(s.refreshDownload)
	s.refreshDownload(source.Snapshot())
	return s
}

// Import reads a dropped file with the first format that yields features and
// adds them to the layer with fresh IDs.
func (s *featureService) Import(filename string, data []byte) ([]View, error) {
	parsed, format, err := formats.Detect(data, s.formats...)
	if err != nil {
		s.logger.Warn("failed to read dropped file",
			"filename", filename,
			"size", len(data),
			"error", err,
		)
		return nil, fmt.Errorf("failed to import %s: %w", filename, err)
	}

	base := filepath.Base(filename)
	for _, f := range parsed {
		if f.Properties == nil {
			f.Properties = geojson.Properties{}
		}
		if id, ok := f.ID.(string); ok && id != "" {
			if _, exists := f.Properties["source_id"]; !exists {
				f.Properties["source_id"] = id
			}
		}
		f.ID = uuid.NewString()
		if base != "" && base != "." {
			f.Properties["source_file"] = base
		}
	}
	s.source.Add(parsed...)

	s.logger.Debug("imported dropped file",
		"filename", filename,
		"format", format.Name(),
		"feature_count", len(parsed),
	)

	views := make([]View, 0, len(parsed))
	for _, f := range parsed {
		views = append(views, s.view(f))
	}
	return views, nil
}

// Draw adds a newly drawn polygon
func (s *featureService) Draw(g orb.Geometry, crs string) (*View, error) {
	poly, err := s.polygon(g, crs)
	if err != nil {
		return nil, err
	}

	f := geojson.NewFeature(poly)
	f.ID = uuid.NewString()
	s.source.Add(f)

	view := s.view(f)
	s.logger.Debug("polygon drawn",
		"id", view.ID,
		"area", view.Style.Area,
		"ramp_index", view.Style.RampIndex,
	)
	return &view, nil
}

// Modify replaces the geometry of an existing feature. Any geometry type is
// accepted since imported features need not be polygons.
func (s *featureService) Modify(id string, g orb.Geometry, crs string) (*View, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: missing geometry", ErrInvalidGeometry)
	}
	wgs, err := geometry.ToWGS84(g, crs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	if poly, ok := wgs.(orb.Polygon); ok {
		if wgs, err = closePolygon(poly); err != nil {
			return nil, err
		}
	}

	f, ok := s.source.Update(id, wgs)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
	}

	view := s.view(f)
	s.logger.Debug("feature modified",
		"id", id,
		"area", view.Style.Area,
		"ramp_index", view.Style.RampIndex,
	)
	return &view, nil
}

func (s *featureService) Remove(id string) error {
	if !s.source.Remove(id) {
		return fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
	}
	return nil
}

// Clear removes every feature from the layer
func (s *featureService) Clear() {
	n := s.source.Len()
	s.source.Clear(false)
	s.logger.Debug("layer cleared", "removed", n)
}

func (s *featureService) List() []View {
	fs := s.source.Features()
	views := make([]View, 0, len(fs))
	for _, f := range fs {
		views = append(views, s.view(f))
	}
	return views
}

func (s *featureService) Get(id string) (*View, error) {
	f, ok := s.source.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
	}
	view := s.view(f)
	return &view, nil
}

func (s *featureService) FeatureAt(lon, lat float64) (*View, error) {
	f := s.source.FeatureAt(orb.Point{lon, lat})
	if f == nil {
		return nil, fmt.Errorf("%w at (%.6f, %.6f)", ErrFeatureNotFound, lon, lat)
	}
	view := s.view(f)
	return &view, nil
}

// Export encodes the whole layer as "geojson" or "kml"
func (s *featureService) Export(format string) ([]byte, error) {
	fs := s.source.Features()

	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case "", "geojson", "json":
		if err := formats.WriteGeoJSON(&buf, fs); err != nil {
			return nil, err
		}
	case "kml":
		fill := func(f *geojson.Feature) color.Color {
			c, err := colorful.Hex(s.styler.StyleFor(f).Fill)
			if err != nil {
				return color.Black
			}
			return c
		}
		if err := formats.WriteKML(&buf, "areamap export", fs, fill); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

// DownloadHref returns a data: URL holding the current layer as GeoJSON
func (s *featureService) DownloadHref() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.href
}

// refreshDownload rebuilds the link from the snapshot carried by event.
// Listeners run concurrently, so an event older than the link already
// written is dropped.
func (s *featureService) refreshDownload(event ChangeEvent) {
	s.mu.RLock()
	stale := event.Revision < s.hrefVersion
	s.mu.RUnlock()
	if stale {
		return
	}

	var buf bytes.Buffer
	if err := formats.WriteGeoJSON(&buf, event.Features); err != nil {
		s.logger.Error("failed to encode download link",
			"revision", event.Revision,
			"error", err,
		)
		return
	}
	href := downloadPrefix + url.PathEscape(buf.String())

	s.mu.Lock()
	defer s.mu.Unlock()
	if event.Revision < s.hrefVersion {
		return
	}
	s.href = href
	s.hrefVersion = event.Revision
}

func (s *featureService) polygon(g orb.Geometry, crs string) (orb.Polygon, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: missing geometry", ErrInvalidGeometry)
	}
	wgs, err := geometry.ToWGS84(g, crs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	poly, ok := wgs.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("%w: expected Polygon, got %s", ErrInvalidGeometry, wgs.GeoJSONType())
	}
	return closePolygon(poly)
}

// closePolygon closes open rings and rejects rings with fewer than 4 positions
func closePolygon(poly orb.Polygon) (orb.Polygon, error) {
	if len(poly) == 0 {
		return nil, fmt.Errorf("%w: polygon has no rings", ErrInvalidGeometry)
	}
	out := make(orb.Polygon, 0, len(poly))
	for i, ring := range poly {
		if len(ring) > 0 && !ring.Closed() {
			ring = append(ring.Clone(), ring[0])
		}
		if len(ring) < 4 {
			return nil, fmt.Errorf("%w: ring %d has %d positions, need at least 4", ErrInvalidGeometry, i, len(ring))
		}
		out = append(out, ring)
	}
	return out, nil
}

func (s *featureService) view(f *geojson.Feature) View {
	return View{
		ID:         featureID(f),
		Geometry:   geojson.NewGeometry(f.Geometry),
		Properties: f.Properties,
		Style:      s.styler.StyleFor(f),
	}
}
