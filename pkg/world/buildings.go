package world

import (
	"math"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/samber/lo"
)

// DefaultBuildingHeight is the height given to every generated building.
const DefaultBuildingHeight = 200.0

// spacingTolerance keeps footprints laid exactly spacing apart from being
// rejected by rounding.
const spacingTolerance = 0.01

// Building is a footprint polygon extruded to a height.
type Building struct {
	Base   geo.Polygon `json:"base" yaml:"base"`
	Height float64     `json:"height" yaml:"height"`
}

// NewBuilding returns a building of the default height.
func NewBuilding(base geo.Polygon) Building {
	return Building{Base: base, Height: DefaultBuildingHeight}
}

// generateBuildings lines the roads with footprints. A wide envelope around
// each road is unioned into guide edges; each guide long enough is cut into
// equal supports separated by spacing, each support becomes a rectangular
// footprint, and footprints too close to an earlier one are dropped.
func generateBuildings(segs []geo.Segment, o config.Options) []Building {
	width := o.RoadWidth + o.BuildingWidth + 2*o.Spacing
	guides := geo.Union(polygons(envelopes(segs, width, o.Roundness)))
	guides = lo.Filter(guides, func(s geo.Segment, _ int) bool {
		return s.Length() >= o.BuildingMinLength
	})

	supports := lo.FlatMap(guides, func(g geo.Segment, _ int) []geo.Segment {
		return splitGuide(g, o.BuildingMinLength, o.Spacing)
	})
	bases := lo.Map(supports, func(s geo.Segment, _ int) geo.Polygon {
		return geo.NewEnvelope(s, o.BuildingWidth, 1).Polygon
	})

	bases = dedupe(bases, o.Spacing)
	return lo.Map(bases, func(b geo.Polygon, _ int) Building {
		return NewBuilding(b)
	})
}

// splitGuide cuts g into as many supports of at least minLength as fit with
// spacing between them, stretching them to cover the guide end to end.
func splitGuide(g geo.Segment, minLength, spacing float64) []geo.Segment {
	length := g.Length() + spacing
	count := int(math.Floor(length / (minLength + spacing)))
	if count < 1 {
		return nil
	}
	size := length/float64(count) - spacing
	dir := g.Direction()

	out := make([]geo.Segment, 0, count)
	q1 := g.P1
	q2 := q1.Add(dir.Scale(size))
	out = append(out, geo.Seg(q1, q2))
	for i := 1; i < count; i++ {
		q1 = q2.Add(dir.Scale(spacing))
		q2 = q1.Add(dir.Scale(size))
		out = append(out, geo.Seg(q1, q2))
	}
	return out
}

// dedupe walks footprint pairs in index order and drops the later one of
// any pair that overlaps or sits closer than spacing. The result depends on
// input order.
func dedupe(bases []geo.Polygon, spacing float64) []geo.Polygon {
	for i := 0; i < len(bases)-1; i++ {
		for j := i + 1; j < len(bases); j++ {
			if bases[i].Intersects(bases[j]) ||
				bases[i].DistanceToPolygon(bases[j]) < spacing-spacingTolerance {
				bases = append(bases[:j], bases[j+1:]...)
				j--
			}
		}
	}
	return bases
}
