package markings

import "github.com/ChicagoDave/roadworld/pkg/geo"

// LightState is the lamp currently lit on a traffic light.
type LightState string

const (
	Green  LightState = "green"
	Yellow LightState = "yellow"
	Red    LightState = "red"
)

// Light is a traffic light. Its state is driven by a traffic.ControlCenter.
type Light struct {
	Shape
	State  LightState
	Border geo.Segment // stop line
}

func newLight(s Shape) *Light {
	return &Light{Shape: s, State: Green, Border: s.Polygon.Segments[0]}
}

func (*Light) Kind() Kind { return KindLight }

// Cross is a pedestrian crossing.
type Cross struct {
	Shape
	Borders [2]geo.Segment
}

func newCross(s Shape) *Cross {
	return &Cross{Shape: s, Borders: [2]geo.Segment{s.Polygon.Segments[0], s.Polygon.Segments[2]}}
}

func (*Cross) Kind() Kind { return KindCross }

// Park is a parking bay.
type Park struct {
	Shape
	Borders [2]geo.Segment
}

func newPark(s Shape) *Park {
	return &Park{Shape: s, Borders: [2]geo.Segment{s.Polygon.Segments[0], s.Polygon.Segments[2]}}
}

func (*Park) Kind() Kind { return KindPark }

// Stop is a stop line.
type Stop struct {
	Shape
	Border geo.Segment
}

func newStop(s Shape) *Stop {
	return &Stop{Shape: s, Border: s.Polygon.Segments[2]}
}

func (*Stop) Kind() Kind { return KindStop }

// Yield is a give-way line.
type Yield struct {
	Shape
	Border geo.Segment
}

func newYield(s Shape) *Yield {
	return &Yield{Shape: s, Border: s.Polygon.Segments[2]}
}

func (*Yield) Kind() Kind { return KindYield }

// Start marks where vehicles spawn.
type Start struct{ Shape }

func (*Start) Kind() Kind { return KindStart }

// Target marks a destination.
type Target struct{ Shape }

func (*Target) Kind() Kind { return KindTarget }
