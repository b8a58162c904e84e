package geo

import "math"

// Point is a 2D coordinate in world units. Two points are the same point
// only when both coordinates are exactly equal.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the positive X axis in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// Translate moves p by distance along the direction given by angle.
func (p Point) Translate(angle, distance float64) Point {
	return Point{
		X: p.X + distance*math.Cos(angle),
		Y: p.Y + distance*math.Sin(angle),
	}
}

// Lerp returns the linear interpolation between p and q at t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: Lerp(p.X, q.X, t),
		Y: Lerp(p.Y, q.Y, t),
	}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Average returns the mean of pts, or the origin for an empty slice.
func Average(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	sum := Point{}
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// NearestPoint returns the candidate closest to loc that lies strictly within
// maxDistance. Pass math.MaxFloat64 for an unbounded search.
func NearestPoint(loc Point, candidates []Point, maxDistance float64) (Point, bool) {
	minDist := maxDistance
	var nearest Point
	found := false
	for _, c := range candidates {
		if d := loc.Distance(c); d < minDist {
			minDist = d
			nearest = c
			found = true
		}
	}
	return nearest, found
}

// Lerp interpolates between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
