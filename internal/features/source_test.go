package features

import (
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func newFeature(id string, g orb.Geometry) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.ID = id
	return f
}

func square(x, y, size float64) orb.Polygon {
	return orb.Polygon{{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}}}
}

func TestSource_AddOrderAndReplace(t *testing.T) {
	src := NewSource()
	src.Add(newFeature("a", square(0, 0, 1)), newFeature("b", square(2, 2, 1)))
	src.Add(newFeature("a", square(5, 5, 1)))

	got := src.Features()
	if len(got) != 2 {
		t.Fatalf("len(Features()) = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("order = [%v %v], want [a b]", got[0].ID, got[1].ID)
	}
	if !orb.Equal(got[0].Geometry, square(5, 5, 1)) {
		t.Errorf("feature a geometry = %v, want replaced square", got[0].Geometry)
	}
}

func TestSource_ReturnsCopies(t *testing.T) {
	src := NewSource()
	src.Add(newFeature("a", square(0, 0, 1)))

	f, _ := src.Get("a")
	f.Geometry.(orb.Polygon)[0][0] = orb.Point{99, 99}
	f.Properties["mutated"] = true

	again, _ := src.Get("a")
	if again.Geometry.(orb.Polygon)[0][0] != (orb.Point{0, 0}) {
		t.Error("stored geometry was mutated through a returned copy")
	}
	if _, ok := again.Properties["mutated"]; ok {
		t.Error("stored properties were mutated through a returned copy")
	}
}

func TestSource_ChangeEvents(t *testing.T) {
	src := NewSource()

	var events []ChangeEvent
	unsubscribe := src.OnChange(func(e ChangeEvent) {
		events = append(events, e)
	})

	src.Add(newFeature("a", square(0, 0, 1)))
	src.Update("a", square(1, 1, 1))
	src.Update("missing", square(1, 1, 1))
	src.Remove("a")
	src.Remove("a")
	src.Add(newFeature("b", square(0, 0, 1)))
	src.Clear(true)
	src.Add(newFeature("c", square(0, 0, 1)))
	src.Clear(false)

	want := []ChangeEvent{
		{Revision: 1, Count: 1},
		{Revision: 2, Count: 1},
		{Revision: 3, Count: 0},
		{Revision: 4, Count: 1},
		{Revision: 5, Count: 1},
		{Revision: 6, Count: 0},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(events), events, len(want))
	}
	for i := range want {
		if events[i].Revision != want[i].Revision || events[i].Count != want[i].Count {
			t.Errorf("event %d = rev %d count %d, want %+v", i, events[i].Revision, events[i].Count, want[i])
		}
		if len(events[i].Features) != events[i].Count {
			t.Errorf("event %d carries %d features, want %d", i, len(events[i].Features), events[i].Count)
		}
	}

	unsubscribe()
	src.Add(newFeature("d", square(0, 0, 1)))
	if len(events) != len(want) {
		t.Errorf("listener called after unsubscribe")
	}
}

func TestSource_Replace(t *testing.T) {
	src := NewSource()
	src.Add(newFeature("a", square(0, 0, 1)), newFeature("b", square(2, 2, 1)))

	var events []ChangeEvent
	src.OnChange(func(e ChangeEvent) { events = append(events, e) })

	src.Replace(newFeature("c", orb.Point{1, 1}), newFeature("d", orb.Point{2, 2}))

	feats := src.Features()
	if len(feats) != 2 || feats[0].ID != "c" || feats[1].ID != "d" {
		t.Fatalf("Features() after Replace = %v", feats)
	}
	if len(events) != 1 {
		t.Fatalf("Replace emitted %d events, want 1", len(events))
	}
	if events[0].Revision != 2 || len(events[0].Features) != 2 {
		t.Errorf("event = rev %d with %d features, want rev 2 with 2", events[0].Revision, len(events[0].Features))
	}

	snap := src.Snapshot()
	if snap.Revision != 2 || snap.Count != 2 || len(snap.Features) != 2 {
		t.Errorf("Snapshot() = rev %d count %d features %d", snap.Revision, snap.Count, len(snap.Features))
	}
}

func TestSource_ReplaceNeverExposesEmptyLayer(t *testing.T) {
	src := NewSource()
	src.Add(newFeature("a", orb.Point{0, 0}))

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			src.Replace(newFeature("a", orb.Point{float64(i % 180), 0}))
		}
		close(done)
	}()

	for {
		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
		if src.IsEmpty() {
			t.Fatal("reader saw an empty layer during Replace")
		}
	}
}

func TestSource_ClearSilentKeepsRevision(t *testing.T) {
	src := NewSource()
	src.Add(newFeature("a", square(0, 0, 1)))
	src.Clear(true)

	if !src.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	if src.Revision() != 1 {
		t.Errorf("Revision() = %d, want 1", src.Revision())
	}
}

func TestSource_Extent(t *testing.T) {
	src := NewSource()
	if _, ok := src.Extent(); ok {
		t.Error("Extent() of empty source reported ok")
	}

	src.Add(newFeature("a", square(0, 0, 1)), newFeature("b", orb.Point{-4, 7}))
	bound, ok := src.Extent()
	if !ok {
		t.Fatal("Extent() reported not ok")
	}
	want := orb.Bound{Min: orb.Point{-4, 0}, Max: orb.Point{1, 7}}
	if !bound.Equal(want) {
		t.Errorf("Extent() = %v, want %v", bound, want)
	}
}

func TestSource_FeatureAt(t *testing.T) {
	src := NewSource()
	src.Add(
		newFeature("big", square(0, 0, 10)),
		newFeature("small", square(2, 2, 2)),
		newFeature("pin", orb.Point{3, 3}),
		newFeature("islands", orb.MultiPolygon{square(20, 20, 1), square(30, 30, 1)}),
	)

	tests := []struct {
		name  string
		point orb.Point
		want  string
	}{
		{"topmost polygon wins", orb.Point{3, 3}, "small"},
		{"only the big one", orb.Point{8, 8}, "big"},
		{"multipolygon part", orb.Point{30.5, 30.5}, "islands"},
		{"outside everything", orb.Point{-1, -1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := src.FeatureAt(tt.point)
			if tt.want == "" {
				if f != nil {
					t.Errorf("FeatureAt(%v) = %v, want nil", tt.point, f.ID)
				}
				return
			}
			if f == nil {
				t.Fatalf("FeatureAt(%v) = nil, want %s", tt.point, tt.want)
			}
			if f.ID != tt.want {
				t.Errorf("FeatureAt(%v) = %v, want %s", tt.point, f.ID, tt.want)
			}
		})
	}
}

func TestSource_ConcurrentAccess(t *testing.T) {
	src := NewSource()
	src.OnChange(func(ChangeEvent) { _ = src.Len() })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := string(rune('a'+i)) + string(rune('a'+j%26))
				src.Add(newFeature(id, square(float64(i), float64(j), 1)))
				_ = src.Features()
				src.Remove(id)
			}
		}(i)
	}
	wg.Wait()

	if !src.IsEmpty() {
		t.Errorf("Len() = %d after balanced add/remove, want 0", src.Len())
	}
}
