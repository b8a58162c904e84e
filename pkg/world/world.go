// Package world derives a drivable environment from a road graph: road
// borders, lane guides, building footprints, trees and the traffic control
// centers that drive the lights.
//
// Every derived collection is recomputed from scratch by Generate. Nothing is
// updated incrementally, so callers only need to compare the graph hash to
// decide whether a rebuild is due.
package world

import (
	"fmt"
	"math"
	"time"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/graph"
	"github.com/ChicagoDave/roadworld/pkg/markings"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"github.com/ChicagoDave/roadworld/pkg/validation"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// maxDistance lifts the radius limit of nearest-point queries.
const maxDistance = math.MaxFloat64

// World holds the road graph, its markings and everything generated from
// them. Derived fields are read-only for consumers.
type World struct {
	RunID   uuid.UUID
	Options config.Options

	Graph    *graph.Graph
	Markings []markings.Marking

	Envelopes      []geo.Envelope
	RoadBorders    []geo.Segment
	LaneGuides     []geo.Segment
	Buildings      []Building
	Trees          []Tree
	ControlCenters []*traffic.ControlCenter

	hash string
}

// New returns an ungenerated world. A nil graph is replaced by an empty one.
func New(g *graph.Graph, ms []markings.Marking, opts config.Options) *World {
	if g == nil {
		g = graph.New()
	}
	return &World{
		Options:  opts,
		Graph:    g,
		Markings: ms,
	}
}

// FromProject builds the graph and markings of p and returns the world they
// describe, not yet generated.
func FromProject(p *config.Project) (*World, error) {
	g, ms, err := p.Build()
	if err != nil {
		return nil, err
	}
	return New(g, ms, p.Options), nil
}

// Generate rebuilds every derived collection from the current graph and
// markings. start seeds the control centers' clock.
func (w *World) Generate(start time.Duration) *validation.Report {
	report := validation.NewReport()
	w.RunID = uuid.New()
	w.hash = w.Graph.Hash()

	o := w.Options
	w.Envelopes = envelopes(w.Graph.Segments, o.RoadWidth, o.Roundness)
	w.RoadBorders = geo.Union(polygons(w.Envelopes))
	w.LaneGuides = geo.Union(polygons(envelopes(w.Graph.Segments, o.RoadWidth/2, o.Roundness)))
	w.Buildings = generateBuildings(w.Graph.Segments, o)
	w.Trees = generateTrees(w.RoadBorders, w.Buildings, w.Envelopes, o)
	w.GenerateControlCenters(start)

	report.AddInfo(validation.Result{
		Level: validation.LevelSpatial,
		Message: fmt.Sprintf("generated %d road borders, %d lane guides from %d segments",
			len(w.RoadBorders), len(w.LaneGuides), len(w.Graph.Segments)),
	})
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d buildings and %d trees", len(w.Buildings), len(w.Trees)),
	})
	report.AddInfo(validation.Result{
		Level: validation.LevelSpatial,
		Message: fmt.Sprintf("%d control centers for %d lights",
			len(w.ControlCenters), len(markings.Lights(w.Markings))),
	})
	return report
}

// Stale reports whether the graph changed since the last Generate.
func (w *World) Stale() bool {
	return w.hash != w.Graph.Hash()
}

// GenerateIfChanged regenerates only when the graph hash moved. The report is
// nil when nothing was done.
func (w *World) GenerateIfChanged(start time.Duration) (*validation.Report, bool) {
	if !w.Stale() {
		return nil, false
	}
	return w.Generate(start), true
}

// SetMarkings replaces the markings and rebuilds the control centers.
func (w *World) SetMarkings(ms []markings.Marking, start time.Duration) {
	w.Markings = ms
	w.GenerateControlCenters(start)
}

// GenerateControlCenters assigns every light to the control center of its
// nearest intersection. Graph points with more than two segments count as
// intersections; without any, the graph point nearest the first marking
// stands in. Nothing is built for an empty graph or when there are no lights.
func (w *World) GenerateControlCenters(start time.Duration) {
	w.ControlCenters = nil

	lights := markings.Lights(w.Markings)
	if len(lights) == 0 || len(w.Graph.Points) == 0 {
		return
	}

	centers := w.Graph.Intersections(2)
	if len(centers) == 0 {
		p, _ := geo.NearestPoint(w.Markings[0].Geometry().Center, w.Graph.Points, maxDistance)
		centers = []geo.Point{p}
	}

	var order []geo.Point
	groups := make(map[geo.Point][]*markings.Light)
	for _, l := range lights {
		p, _ := geo.NearestPoint(l.Center, centers, maxDistance)
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], l)
	}

	timing := w.Options.Timing()
	w.ControlCenters = lo.Map(order, func(p geo.Point, _ int) *traffic.ControlCenter {
		return traffic.New(p, groups[p], timing, start)
	})
}

// Update advances every control center to timestamp.
func (w *World) Update(timestamp time.Duration) {
	for _, cc := range w.ControlCenters {
		cc.Update(timestamp)
	}
}

// Occupied returns the polygons trees may not grow on: building bases and
// road envelopes.
func (w *World) Occupied() []geo.Polygon {
	return occupied(w.Buildings, w.Envelopes)
}

func envelopes(segs []geo.Segment, width float64, roundness int) []geo.Envelope {
	return lo.Map(segs, func(s geo.Segment, _ int) geo.Envelope {
		return geo.NewEnvelope(s, width, roundness)
	})
}

func polygons(envs []geo.Envelope) []geo.Polygon {
	return lo.Map(envs, func(e geo.Envelope, _ int) geo.Polygon {
		return e.Polygon
	})
}

func occupied(buildings []Building, envs []geo.Envelope) []geo.Polygon {
	bases := lo.Map(buildings, func(b Building, _ int) geo.Polygon {
		return b.Base
	})
	return append(bases, polygons(envs)...)
}
