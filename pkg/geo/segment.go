package geo

import "math"

// Segment is a directed edge from P1 to P2. Equality between segments is
// undirected: a segment equals its reverse.
type Segment struct {
	P1     Point `json:"p1" yaml:"p1"`
	P2     Point `json:"p2" yaml:"p2"`
	OneWay bool  `json:"oneWay,omitempty" yaml:"oneWay,omitempty"`
}

// Seg is a shorthand constructor for Segment.
func Seg(p1, p2 Point) Segment {
	return Segment{P1: p1, P2: p2}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Midpoint returns the midpoint of the segment.
func (s Segment) Midpoint() Point {
	return MidPoint(s.P1, s.P2)
}

// Direction returns the unit vector from P1 to P2, or the zero vector for a
// degenerate segment.
func (s Segment) Direction() Point {
	return s.P2.Sub(s.P1).Normalize()
}

// Degenerate reports whether both endpoints coincide.
func (s Segment) Degenerate() bool {
	return s.P1.Equal(s.P2)
}

// Includes reports whether p is one of the endpoints.
func (s Segment) Includes(p Point) bool {
	return s.P1.Equal(p) || s.P2.Equal(p)
}

// Equal reports whether both segments join the same two points, in either order.
func (s Segment) Equal(o Segment) bool {
	return s.Includes(o.P1) && s.Includes(o.P2)
}

// Projection is the orthogonal projection of a point onto a segment's line.
// Offset is 0 at P1 and 1 at P2 and may fall outside [0,1].
type Projection struct {
	Point  Point
	Offset float64
	Valid  bool
}

// Project projects p onto the infinite line through s. The result is invalid
// when s has zero length.
func (s Segment) Project(p Point) Projection {
	dir := s.P2.Sub(s.P1)
	lenSq := dir.Dot(dir)
	if lenSq == 0 {
		return Projection{Point: s.P1}
	}
	t := (p.Dot(dir) - s.P1.Dot(dir)) / lenSq
	return Projection{
		Point:  s.P1.Add(dir.Scale(t)),
		Offset: t,
		Valid:  true,
	}
}

// DistanceToPoint returns the distance from p to the closest point of s. When
// the projection falls outside the segment the nearer endpoint is used.
func (s Segment) DistanceToPoint(p Point) float64 {
	proj := s.Project(p)
	if !proj.Valid || proj.Offset < 0 || proj.Offset > 1 {
		return math.Min(s.P1.Distance(p), s.P2.Distance(p))
	}
	return proj.Point.Distance(p)
}

// NearestSegment returns the segment closest to p that lies strictly within
// maxDistance.
func NearestSegment(p Point, segments []Segment, maxDistance float64) (Segment, bool) {
	nearestDist := maxDistance
	var nearest Segment
	found := false
	for _, s := range segments {
		if d := s.DistanceToPoint(p); d < nearestDist {
			nearestDist = d
			nearest = s
			found = true
		}
	}
	return nearest, found
}
