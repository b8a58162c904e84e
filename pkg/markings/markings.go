// Package markings models the road markings placed on lanes: crossings,
// traffic lights, parking bays, start and target spots, stop and yield lines.
package markings

import (
	"errors"
	"fmt"

	"github.com/ChicagoDave/roadworld/pkg/geo"
)

// Kind identifies a marking type in persisted records.
type Kind string

const (
	KindCross  Kind = "cross"
	KindLight  Kind = "light"
	KindPark   Kind = "park"
	KindStart  Kind = "start"
	KindStop   Kind = "stop"
	KindTarget Kind = "target"
	KindYield  Kind = "yield"
)

// ErrUnknownKind is returned when a record names a marking type that does not exist.
var ErrUnknownKind = errors.New("unknown marking type")

// Marking is any marking placed in the world.
type Marking interface {
	Kind() Kind
	Geometry() *Shape
}

// Shape is the geometry shared by all markings: a rectangle of Width across
// the lane and Height along Direction, centered on Center.
type Shape struct {
	Center    geo.Point
	Direction geo.Point
	Width     float64
	Height    float64
	Support   geo.Segment
	Polygon   geo.Polygon
}

// NewShape builds the support segment and the rectangular outline.
func NewShape(center, direction geo.Point, width, height float64) Shape {
	angle := direction.Angle()
	support := geo.Seg(
		center.Translate(angle, height/2),
		center.Translate(angle, -height/2),
	)
	return Shape{
		Center:    center,
		Direction: direction,
		Width:     width,
		Height:    height,
		Support:   support,
		Polygon:   geo.NewEnvelope(support, width, 0).Polygon,
	}
}

// Geometry returns the marking's shared geometry.
func (s *Shape) Geometry() *Shape { return s }

// Record is the persisted form of a marking.
type Record struct {
	Type      Kind      `json:"type" yaml:"type"`
	Center    geo.Point `json:"center" yaml:"center"`
	Direction geo.Point `json:"direction" yaml:"direction"`
	Width     float64   `json:"width" yaml:"width"`
	Height    float64   `json:"height" yaml:"height"`
}

// ToRecord converts a marking back to its persisted form.
func ToRecord(m Marking) Record {
	s := m.Geometry()
	return Record{Type: m.Kind(), Center: s.Center, Direction: s.Direction, Width: s.Width, Height: s.Height}
}

// Load reconstructs a marking from its record. Unknown types fail rather than
// fall back to a default, since they mean the stored world is corrupt.
func Load(rec Record) (Marking, error) {
	shape := NewShape(rec.Center, rec.Direction, rec.Width, rec.Height)
	switch rec.Type {
	case KindCross:
		return newCross(shape), nil
	case KindLight:
		return newLight(shape), nil
	case KindPark:
		return newPark(shape), nil
	case KindStart:
		return &Start{Shape: shape}, nil
	case KindStop:
		return newStop(shape), nil
	case KindTarget:
		return &Target{Shape: shape}, nil
	case KindYield:
		return newYield(shape), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, rec.Type)
	}
}

// LoadAll loads every record, stopping at the first failure.
func LoadAll(recs []Record) ([]Marking, error) {
	out := make([]Marking, 0, len(recs))
	for i, r := range recs {
		m, err := Load(r)
		if err != nil {
			return nil, fmt.Errorf("marking %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Lights returns the traffic lights among ms, in order.
func Lights(ms []Marking) []*Light {
	var out []*Light
	for _, m := range ms {
		if l, ok := m.(*Light); ok {
			out = append(out, l)
		}
	}
	return out
}
