package geo

import "github.com/paulmach/orb"

// Bounds returns the axis-aligned bounding box of pts. ok is false for an
// empty input.
func Bounds(pts []Point) (bound orb.Bound, ok bool) {
	if len(pts) == 0 {
		return orb.Bound{}, false
	}
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = p.Orb()
	}
	return mp.Bound(), true
}

// Orb converts p to an orb point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrb converts an orb point back to a Point.
func FromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Ring returns the closed orb ring of the polygon's vertex loop.
func (p Polygon) Ring() orb.Ring {
	if len(p.Points) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(p.Points)+1)
	for _, v := range p.Points {
		r = append(r, v.Orb())
	}
	return append(r, p.Points[0].Orb())
}

// LineString returns the segment as a two-point orb line string.
func (s Segment) LineString() orb.LineString {
	return orb.LineString{s.P1.Orb(), s.P2.Orb()}
}
