package geo

import "math"

// Envelope is a capsule-shaped polygon buffering a skeleton segment.
type Envelope struct {
	Skeleton Segment `json:"skeleton" yaml:"skeleton"`
	Polygon  Polygon `json:"polygon" yaml:"polygon"`
}

// NewEnvelope builds the capsule of the given total width around skeleton.
// Each end cap is a half circle sampled in roundness steps; roundness 0 or 1
// yields a plain rectangle.
func NewEnvelope(skeleton Segment, width float64, roundness int) Envelope {
	return Envelope{
		Skeleton: skeleton,
		Polygon:  capsule(skeleton, width/2, roundness),
	}
}

func capsule(s Segment, radius float64, roundness int) Polygon {
	alpha := s.P1.Sub(s.P2).Angle()
	alphaCW := alpha + math.Pi/2
	alphaCCW := alpha - math.Pi/2

	step := math.Pi / float64(max(1, roundness))
	// Half a step of slack keeps the last arc sample despite rounding.
	eps := step / 2

	var pts []Point
	for a := alphaCCW; a < alphaCW+eps; a += step {
		pts = append(pts, s.P1.Translate(a, radius))
	}
	for a := alphaCCW; a < alphaCW+eps; a += step {
		pts = append(pts, s.P2.Translate(math.Pi+a, radius))
	}
	return NewPolygon(pts...)
}
