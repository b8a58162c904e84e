package geo

import "math"

// parallelEpsilon is the smallest |denominator| treated as a proper crossing.
const parallelEpsilon = 1e-3

// Intersection is a crossing point of two segments. Offset is the fractional
// position of the crossing along the first segment.
type Intersection struct {
	Point
	Offset float64
}

// Intersect returns the crossing of a1→a2 with b1→b2. Nearly parallel pairs
// and crossings outside either segment report ok=false. Touching endpoints are
// reported, with Offset exactly 0 or 1 when the touch is on the first segment.
func Intersect(a1, a2, b1, b2 Point) (Intersection, bool) {
	hit, _, ok := intersect(a1, a2, b1, b2)
	return hit, ok
}

// intersect additionally returns the offset along the second segment.
func intersect(a1, a2, b1, b2 Point) (Intersection, float64, bool) {
	a := a2.Sub(a1)
	b := b1.Sub(b2)
	c := a1.Sub(b1)

	d := b.X*a.Y - b.Y*a.X
	if math.Abs(d) < parallelEpsilon {
		return Intersection{}, 0, false
	}
	alpha := (b.Y*c.X - b.X*c.Y) / d
	beta := -(a.Y*c.X - a.X*c.Y) / d
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Intersection{}, 0, false
	}
	return Intersection{
		Point: Point{
			X: a1.X + alpha*(a2.X-a1.X),
			Y: a1.Y + alpha*(a2.Y-a1.Y),
		},
		Offset: alpha,
	}, beta, true
}

// interiorIntersect reports a crossing that is strictly inside both segments.
func interiorIntersect(s, o Segment) (Point, bool) {
	hit, beta, ok := intersect(s.P1, s.P2, o.P1, o.P2)
	if !ok || hit.Offset == 0 || hit.Offset == 1 || beta == 0 || beta == 1 {
		return Point{}, false
	}
	return hit.Point, true
}
