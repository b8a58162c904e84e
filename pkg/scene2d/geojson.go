package scene2d

import (
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/world"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature layers, stored in each feature's "layer" property.
const (
	LayerRoad          = "road"
	LayerBorder        = "road_border"
	LayerLaneGuide     = "lane_guide"
	LayerBuilding      = "building"
	LayerTree          = "tree"
	LayerMarking       = "marking"
	LayerControlCenter = "control_center"
)

// GeoJSON exports the world as a feature collection in world coordinates.
// Features appear in layer order: roads, borders, lane guides, buildings,
// trees, markings, control centers.
func GeoJSON(w *world.World) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, s := range w.Graph.Segments {
		f := feature(s.LineString(), LayerRoad)
		if s.OneWay {
			f.Properties["one_way"] = true
		}
		fc.Append(f)
	}
	for _, s := range w.RoadBorders {
		fc.Append(feature(s.LineString(), LayerBorder))
	}
	for _, s := range w.LaneGuides {
		fc.Append(feature(s.LineString(), LayerLaneGuide))
	}
	for _, b := range w.Buildings {
		f := feature(orb.Polygon{b.Base.Ring()}, LayerBuilding)
		f.Properties["height"] = b.Height
		fc.Append(f)
	}
	for _, t := range w.Trees {
		f := feature(t.Center.Orb(), LayerTree)
		f.Properties["size"] = t.Size
		fc.Append(f)
	}
	for _, m := range w.Markings {
		f := feature(orb.Polygon{m.Geometry().Polygon.Ring()}, LayerMarking)
		f.Properties["kind"] = string(m.Kind())
		fc.Append(f)
	}
	for i, cc := range w.ControlCenters {
		f := feature(cc.Center.Orb(), LayerControlCenter)
		f.Properties["index"] = i
		f.Properties["lights"] = len(cc.Lights)
		fc.Append(f)
	}
	return fc
}

func feature(g orb.Geometry, layer string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["layer"] = layer
	return f
}

// FromGeoJSON recovers the road skeleton from a collection produced by
// GeoJSON, so an exported world can be regenerated.
func FromGeoJSON(fc *geojson.FeatureCollection) []geo.Segment {
	var segs []geo.Segment
	for _, f := range fc.Features {
		if f.Properties.MustString("layer", "") != LayerRoad {
			continue
		}
		ls, ok := f.Geometry.(orb.LineString)
		if !ok || len(ls) != 2 {
			continue
		}
		s := geo.Seg(geo.FromOrb(ls[0]), geo.FromOrb(ls[1]))
		s.OneWay = f.Properties.MustBool("one_way", false)
		segs = append(segs, s)
	}
	return segs
}
