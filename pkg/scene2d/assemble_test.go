package scene2d

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/world"
	"github.com/paulmach/orb/geojson"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	p, err := config.LoadProject("../../examples/crossroads")
	if err != nil {
		t.Fatal(err)
	}
	w, err := world.FromProject(p)
	if err != nil {
		t.Fatal(err)
	}
	w.Generate(0)
	return w
}

func TestAssemble2D(t *testing.T) {
	w := testWorld(t)
	s := Assemble2D(w)

	if s.Metadata.RunID != w.RunID.String() {
		t.Errorf("run ID = %q, want %q", s.Metadata.RunID, w.RunID)
	}
	if s.Metadata.GraphHash != w.Graph.Hash() {
		t.Error("metadata hash does not match the graph")
	}
	if s.Metadata.PointCount != 5 || s.Metadata.SegmentCount != 4 {
		t.Errorf("graph counts = %d/%d, want 5/4", s.Metadata.PointCount, s.Metadata.SegmentCount)
	}
	if s.Metadata.Bounds == nil {
		t.Fatal("expected bounds for a non-empty world")
	}
	if b := s.Metadata.Bounds; b[0][0] > -600 || b[1][0] < 600 {
		t.Errorf("bounds %v do not cover the road arms", *b)
	}

	if len(s.Roads.Skeleton) != 4 || len(s.Roads.Envelopes) != 4 {
		t.Errorf("expected 4 skeleton lines and envelopes, got %d and %d", len(s.Roads.Skeleton), len(s.Roads.Envelopes))
	}
	if len(s.Roads.Borders) != len(w.RoadBorders) || len(s.Roads.LaneGuides) != len(w.LaneGuides) {
		t.Error("road line counts do not match the world")
	}
	if len(s.Buildings) != len(w.Buildings) || len(s.Trees) != len(w.Trees) {
		t.Error("building or tree counts do not match the world")
	}
	if len(s.Markings) != 6 {
		t.Errorf("expected 6 markings, got %d", len(s.Markings))
	}
	if s.Markings[0].Kind != "light" || s.Markings[0].State != "green" {
		t.Errorf("first marking = %+v, want a green light", s.Markings[0])
	}
	if s.Markings[4].State != "" {
		t.Errorf("non-light marking should carry no state, got %q", s.Markings[4].State)
	}

	if len(s.ControlCenters) != 1 {
		t.Fatalf("expected 1 control center, got %d", len(s.ControlCenters))
	}
	cc := s.ControlCenters[0]
	if cc.CycleTicks != 12 || len(cc.States) != 4 {
		t.Errorf("control center = %+v, want a 12-tick cycle over 4 lights", cc)
	}
}

func TestAssemble2DEmptyWorldHasNoNulls(t *testing.T) {
	w := world.New(nil, nil, config.DefaultOptions())
	w.Generate(0)

	data, err := json.Marshal(Assemble2D(w))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"buildings", "trees", "markings", "control_centers"} {
		if decoded[key] == nil {
			t.Errorf("%s encoded as null", key)
		}
	}
	if _, ok := decoded["metadata"].(map[string]any)["bounds"]; ok {
		t.Error("empty world should omit bounds")
	}
}

func TestLightsTracksUpdates(t *testing.T) {
	w := testWorld(t)
	before := Lights(w)[0].States[0]
	w.Update(2 * time.Second)
	after := Lights(w)[0].States[0]
	if before != "green" || after != "yellow" {
		t.Errorf("light 0 went %s -> %s, want green -> yellow", before, after)
	}
}

func TestGeoJSON(t *testing.T) {
	w := testWorld(t)
	fc := GeoJSON(w)

	counts := map[string]int{}
	for _, f := range fc.Features {
		counts[f.Properties.MustString("layer")]++
	}
	if counts[LayerRoad] != 4 {
		t.Errorf("road features = %d, want 4", counts[LayerRoad])
	}
	if counts[LayerBuilding] != len(w.Buildings) || counts[LayerTree] != len(w.Trees) {
		t.Error("building or tree feature counts do not match the world")
	}
	if counts[LayerMarking] != 6 || counts[LayerControlCenter] != 1 {
		t.Errorf("marking/control center features = %d/%d, want 6/1", counts[LayerMarking], counts[LayerControlCenter])
	}
}

func TestGeoJSONRoundTripsSkeleton(t *testing.T) {
	w := testWorld(t)
	w.Graph.Segments[0].OneWay = true

	data, err := GeoJSON(w).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}

	segs := FromGeoJSON(fc)
	if len(segs) != len(w.Graph.Segments) {
		t.Fatalf("recovered %d segments, want %d", len(segs), len(w.Graph.Segments))
	}
	for i, s := range segs {
		if !s.Equal(w.Graph.Segments[i]) || s.OneWay != w.Graph.Segments[i].OneWay {
			t.Errorf("segment %d = %+v, want %+v", i, s, w.Graph.Segments[i])
		}
	}
	if !segs[0].P1.Equal(geo.Pt(0, 0)) {
		t.Errorf("first segment should start at the crossing, got %v", segs[0].P1)
	}
}
