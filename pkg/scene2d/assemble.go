package scene2d

import (
	"time"

	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/markings"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"github.com/ChicagoDave/roadworld/pkg/world"
)

// Assemble2D converts a generated world into a 2D scene suitable for SVG
// rendering. Collections are always non-nil so the JSON never carries null.
func Assemble2D(w *world.World) *Scene2D {
	return &Scene2D{
		Metadata:       assembleMetadata(w),
		Roads:          assembleRoads(w),
		Buildings:      assembleBuildings(w.Buildings),
		Trees:          assembleTrees(w.Trees),
		Markings:       assembleMarkings(w.Markings),
		ControlCenters: assembleControlCenters(w.ControlCenters),
	}
}

// Lights returns only the control-center states, for per-tick streaming.
func Lights(w *world.World) []ControlCenter2D {
	return assembleControlCenters(w.ControlCenters)
}

func assembleMetadata(w *world.World) Metadata {
	m := Metadata{
		RunID:        w.RunID.String(),
		GraphHash:    w.Graph.Hash(),
		PointCount:   len(w.Graph.Points),
		SegmentCount: len(w.Graph.Segments),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	var pts []geo.Point
	for _, s := range w.RoadBorders {
		pts = append(pts, s.P1, s.P2)
	}
	for _, b := range w.Buildings {
		pts = append(pts, b.Base.Points...)
	}
	if bound, ok := geo.Bounds(pts); ok {
		m.Bounds = &[2][2]float64{bound.Min, bound.Max}
	}
	return m
}

func assembleRoads(w *world.World) RoadCollection {
	rc := RoadCollection{
		Skeleton:   segmentsToLines(w.Graph.Segments),
		Borders:    segmentsToLines(w.RoadBorders),
		LaneGuides: segmentsToLines(w.LaneGuides),
	}
	rc.Envelopes = make([][][2]float64, 0, len(w.Envelopes))
	for _, e := range w.Envelopes {
		rc.Envelopes = append(rc.Envelopes, polygonToCoords(e.Polygon))
	}
	return rc
}

func assembleBuildings(buildings []world.Building) []Building2D {
	result := make([]Building2D, 0, len(buildings))
	for _, b := range buildings {
		result = append(result, Building2D{
			Base:   polygonToCoords(b.Base),
			Height: b.Height,
		})
	}
	return result
}

func assembleTrees(trees []world.Tree) []Tree2D {
	result := make([]Tree2D, 0, len(trees))
	for _, t := range trees {
		result = append(result, Tree2D{
			Center:            coord(t.Center),
			Size:              t.Size,
			HeightCoefficient: t.HeightCoefficient,
			LevelCount:        t.LevelCount,
			Base:              polygonToCoords(t.Base),
		})
	}
	return result
}

func assembleMarkings(ms []markings.Marking) []Marking2D {
	result := make([]Marking2D, 0, len(ms))
	for _, m := range ms {
		s := m.Geometry()
		m2 := Marking2D{
			Kind:      string(m.Kind()),
			Center:    coord(s.Center),
			Direction: coord(s.Direction),
			Polygon:   polygonToCoords(s.Polygon),
		}
		if l, ok := m.(*markings.Light); ok {
			m2.State = string(l.State)
		}
		result = append(result, m2)
	}
	return result
}

func assembleControlCenters(ccs []*traffic.ControlCenter) []ControlCenter2D {
	result := make([]ControlCenter2D, 0, len(ccs))
	for _, cc := range ccs {
		states := make([]string, 0, len(cc.Lights))
		for _, s := range cc.States() {
			states = append(states, string(s))
		}
		result = append(result, ControlCenter2D{
			Center:      coord(cc.Center),
			CurrentTick: cc.CurrentTick,
			CycleTicks:  cc.Ticks(),
			States:      states,
		})
	}
	return result
}

func coord(p geo.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

// polygonToCoords converts a geo.Polygon to a [][2]float64 coordinate list.
func polygonToCoords(p geo.Polygon) [][2]float64 {
	coords := make([][2]float64, len(p.Points))
	for i, v := range p.Points {
		coords[i] = coord(v)
	}
	return coords
}

func segmentsToLines(segs []geo.Segment) []Line2D {
	lines := make([]Line2D, len(segs))
	for i, s := range segs {
		lines[i] = Line2D{Start: coord(s.P1), End: coord(s.P2), OneWay: s.OneWay}
	}
	return lines
}
