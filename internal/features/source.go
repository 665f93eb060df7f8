package features

import (
	"sync"

	"areamap/internal/geometry"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ChangeEvent is delivered to listeners after every non-silent mutation.
// Features is a copy of the layer taken when Revision was reached, so
// listeners never have to read the source back.
type ChangeEvent struct {
	Revision int
	Count    int
	Features []*geojson.Feature
}

// Listener receives change events. It is called without the source lock held.
type Listener func(ChangeEvent)

// Source is an ordered, in-memory layer of features keyed by string ID.
// It is safe for concurrent use. Stored features are never handed out;
// readers get copies.
type Source struct {
	mu        sync.RWMutex
	order     []string
	byID      map[string]*geojson.Feature
	revision  int
	listeners map[int]Listener
	nextLis   int
}

// NewSource creates an empty source
func NewSource() *Source {
	return &Source{
		byID:      make(map[string]*geojson.Feature),
		listeners: make(map[int]Listener),
	}
}

// OnChange registers a listener and returns a function removing it
func (s *Source) OnChange(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextLis
	s.nextLis++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Add appends features, replacing any feature already stored under the same ID
// in place. Every feature must carry a string ID.
func (s *Source) Add(features ...*geojson.Feature) {
	if len(features) == 0 {
		return
	}

	s.mu.Lock()
	for _, f := range features {
		id := featureID(f)
		if _, exists := s.byID[id]; !exists {
			s.order = append(s.order, id)
		}
		s.byID[id] = cloneFeature(f)
	}
	event := s.bumpLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, event)
}

// Replace swaps the whole layer for features in one step. Readers never see
// the empty layer in between, and a single change event is emitted.
func (s *Source) Replace(features ...*geojson.Feature) {
	s.mu.Lock()
	s.order = make([]string, 0, len(features))
	s.byID = make(map[string]*geojson.Feature, len(features))
	for _, f := range features {
		id := featureID(f)
		if _, exists := s.byID[id]; !exists {
			s.order = append(s.order, id)
		}
		s.byID[id] = cloneFeature(f)
	}
	event := s.bumpLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, event)
}

// Update replaces the geometry of the feature stored under id
func (s *Source) Update(id string, g orb.Geometry) (*geojson.Feature, bool) {
	s.mu.Lock()
	f, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	f.Geometry = orb.Clone(g)
	out := cloneFeature(f)
	event := s.bumpLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, event)
	return out, true
}

// Remove deletes the feature stored under id
func (s *Source) Remove(id string) bool {
	s.mu.Lock()
	if _, ok := s.byID[id]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	event := s.bumpLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, event)
	return true
}

// Clear removes all features. A silent clear does not notify listeners.
func (s *Source) Clear(silent bool) {
	s.mu.Lock()
	s.order = nil
	s.byID = make(map[string]*geojson.Feature)
	if silent {
		s.mu.Unlock()
		return
	}
	event := s.bumpLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, event)
}

// Get returns a copy of the feature stored under id
func (s *Source) Get(id string) (*geojson.Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return cloneFeature(f), true
}

// Features returns copies of all features in insertion order
func (s *Source) Features() []*geojson.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.featuresLocked()
}

// Snapshot returns the current revision together with a copy of the layer
func (s *Source) Snapshot() ChangeEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ChangeEvent{Revision: s.revision, Count: len(s.order), Features: s.featuresLocked()}
}

func (s *Source) featuresLocked() []*geojson.Feature {
	out := make([]*geojson.Feature, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneFeature(s.byID[id]))
	}
	return out
}

// Len returns the number of features
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// IsEmpty reports whether the source holds no features
func (s *Source) IsEmpty() bool {
	return s.Len() == 0
}

// Revision returns the number of change events emitted so far
func (s *Source) Revision() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Extent returns the bound of all features. ok is false for an empty source.
func (s *Source) Extent() (orb.Bound, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	geoms := make([]orb.Geometry, 0, len(s.order))
	for _, id := range s.order {
		geoms = append(geoms, s.byID[id].Geometry)
	}
	return geometry.Extent(geoms...)
}

// FeatureAt returns the topmost (most recently added) polygonal feature
// containing p, or nil if none does.
func (s *Source) FeatureAt(p orb.Point) *geojson.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.order) - 1; i >= 0; i-- {
		f := s.byID[s.order[i]]
		if contains(f.Geometry, p) {
			return cloneFeature(f)
		}
	}
	return nil
}

func contains(g orb.Geometry, p orb.Point) bool {
	switch g := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	case orb.Collection:
		for _, sub := range g {
			if contains(sub, p) {
				return true
			}
		}
	}
	return false
}

func (s *Source) bumpLocked() ChangeEvent {
	s.revision++
	return ChangeEvent{Revision: s.revision, Count: len(s.order), Features: s.featuresLocked()}
}

func (s *Source) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextLis; i++ {
		if l, ok := s.listeners[i]; ok {
			out = append(out, l)
		}
	}
	return out
}

func notify(listeners []Listener, event ChangeEvent) {
	for _, l := range listeners {
		l(event)
	}
}

func featureID(f *geojson.Feature) string {
	id, _ := f.ID.(string)
	return id
}

func cloneFeature(f *geojson.Feature) *geojson.Feature {
	out := &geojson.Feature{
		ID:         f.ID,
		Type:       f.Type,
		BBox:       f.BBox,
		Geometry:   orb.Clone(f.Geometry),
		Properties: f.Properties.Clone(),
	}
	return out
}
