package geo

import (
	"encoding/json"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// Polygon is a closed loop of vertices together with its edge segments.
// NewPolygon derives the edges from the vertices; Break and Union return
// polygons whose edges have been split at crossings while the vertex loop
// stays as it was.
type Polygon struct {
	Points   []Point   `json:"points" yaml:"points"`
	Segments []Segment `json:"-" yaml:"-"`
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	p := Polygon{Points: pts}
	p.Segments = edges(pts)
	return p
}

func edges(pts []Point) []Segment {
	n := len(pts)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, Segment{P1: pts[i], P2: pts[(i+1)%n]})
	}
	return segs
}

// polygonRecord is the persisted form of a polygon: its vertex loop only.
type polygonRecord struct {
	Points []Point `json:"points" yaml:"points"`
}

// UnmarshalJSON decodes the vertex loop and rebuilds the edges from it.
func (p *Polygon) UnmarshalJSON(data []byte) error {
	var rec polygonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*p = NewPolygon(rec.Points...)
	return nil
}

// UnmarshalYAML decodes the vertex loop and rebuilds the edges from it.
func (p *Polygon) UnmarshalYAML(node *yaml.Node) error {
	var rec polygonRecord
	if err := node.Decode(&rec); err != nil {
		return err
	}
	*p = NewPolygon(rec.Points...)
	return nil
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Points[i].X * p.Points[j].Y
		area -= p.Points[j].X * p.Points[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Contains returns true if the point is inside the polygon using ray casting
// over the vertex loop. The half-open crossing rule counts a ray passing
// through a vertex once, so no far-away reference point is needed.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Points[i]
		vj := p.Points[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ContainsSegment reports whether the midpoint of s lies inside p.
func (p Polygon) ContainsSegment(s Segment) bool {
	return p.Contains(s.Midpoint())
}

// DistanceToPoint returns the minimum distance from any edge of p to pt.
func (p Polygon) DistanceToPoint(pt Point) float64 {
	minDist := math.Inf(1)
	for _, s := range p.Segments {
		minDist = math.Min(minDist, s.DistanceToPoint(pt))
	}
	return minDist
}

// DistanceToPolygon returns the minimum distance from the vertices of p to
// the edges of o.
func (p Polygon) DistanceToPolygon(o Polygon) float64 {
	minDist := math.Inf(1)
	for _, v := range p.Points {
		minDist = math.Min(minDist, o.DistanceToPoint(v))
	}
	return minDist
}

// Intersects reports whether any edge of p crosses an edge of o strictly
// inside both edges. Shared vertices and touching endpoints do not count.
func (p Polygon) Intersects(o Polygon) bool {
	for _, s1 := range p.Segments {
		for _, s2 := range o.Segments {
			if _, ok := interiorIntersect(s1, s2); ok {
				return true
			}
		}
	}
	return false
}

// Break splits the edges of a and b at every point where an edge of one
// crosses an edge of the other strictly inside both. The inputs are left
// untouched. Edges created by a split are tested against the remaining edges
// of the other polygon, so the pair order matters.
func Break(a, b Polygon) (Polygon, Polygon) {
	segs1 := slices.Clone(a.Segments)
	segs2 := slices.Clone(b.Segments)
	for i := 0; i < len(segs1); i++ {
		for j := 0; j < len(segs2); j++ {
			pt, ok := interiorIntersect(segs1[i], segs2[j])
			if !ok {
				continue
			}
			tail := segs1[i].P2
			segs1[i].P2 = pt
			segs1 = slices.Insert(segs1, i+1, Segment{P1: pt, P2: tail})

			tail = segs2[j].P2
			segs2[j].P2 = pt
			segs2 = slices.Insert(segs2, j+1, Segment{P1: pt, P2: tail})
		}
	}
	return Polygon{Points: a.Points, Segments: segs1}, Polygon{Points: b.Points, Segments: segs2}
}

// MultiBreak breaks every pair of polygons in ascending (i, j) order, feeding
// the already-split edges of earlier pairs into later ones.
func MultiBreak(polys []Polygon) []Polygon {
	out := slices.Clone(polys)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			out[i], out[j] = Break(out[i], out[j])
		}
	}
	return out
}

// Union returns the boundary edges of the union of polys: after breaking all
// pairs, an edge survives when its midpoint lies inside none of the other
// polygons. Suited to convex buffer shapes, not a general boolean union.
func Union(polys []Polygon) []Segment {
	broken := MultiBreak(polys)
	var kept []Segment
	for i, p := range broken {
		for _, s := range p.Segments {
			covered := false
			for j, o := range broken {
				if i != j && o.ContainsSegment(s) {
					covered = true
					break
				}
			}
			if !covered {
				kept = append(kept, s)
			}
		}
	}
	return kept
}
