// Package graph holds the editable road topology: a set of unique points and
// a set of unique undirected segments between them.
package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ChicagoDave/roadworld/pkg/geo"
)

// Graph is the road skeleton edited by the user. Points are unique by value
// and segments are unique regardless of direction. Insertion order is kept so
// that derived output and Hash are stable.
type Graph struct {
	Points   []geo.Point   `json:"points" yaml:"points"`
	Segments []geo.Segment `json:"segments" yaml:"segments"`
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{Points: []geo.Point{}, Segments: []geo.Segment{}}
}

// Load rebuilds a graph from plain records. Segment endpoints must refer to
// listed points; anything else indicates corrupt persisted state.
func Load(rec Graph) (*Graph, error) {
	g := New()
	for _, p := range rec.Points {
		g.TryAddPoint(p)
	}
	for i, s := range rec.Segments {
		if !g.ContainsPoint(s.P1) || !g.ContainsPoint(s.P2) {
			return nil, fmt.Errorf("segment %d (%v -> %v) references an unknown point", i, s.P1, s.P2)
		}
		g.TryAddSegment(s)
	}
	return g, nil
}

// ContainsPoint reports whether p is in the graph.
func (g *Graph) ContainsPoint(p geo.Point) bool {
	return slices.Contains(g.Points, p)
}

// ContainsSegment reports whether s, in either direction, is in the graph.
func (g *Graph) ContainsSegment(s geo.Segment) bool {
	return slices.ContainsFunc(g.Segments, s.Equal)
}

// TryAddPoint adds p unless it is already present.
func (g *Graph) TryAddPoint(p geo.Point) bool {
	if g.ContainsPoint(p) {
		return false
	}
	g.Points = append(g.Points, p)
	return true
}

// TryAddSegment adds s unless it is degenerate or already present.
func (g *Graph) TryAddSegment(s geo.Segment) bool {
	if s.Degenerate() || g.ContainsSegment(s) {
		return false
	}
	g.Segments = append(g.Segments, s)
	return true
}

// SegmentsWithPoint returns every segment that has p as an endpoint.
func (g *Graph) SegmentsWithPoint(p geo.Point) []geo.Segment {
	var out []geo.Segment
	for _, s := range g.Segments {
		if s.Includes(p) {
			out = append(out, s)
		}
	}
	return out
}

// RemoveSegment deletes s (in either direction) and reports whether it was present.
func (g *Graph) RemoveSegment(s geo.Segment) bool {
	i := slices.IndexFunc(g.Segments, s.Equal)
	if i < 0 {
		return false
	}
	g.Segments = slices.Delete(g.Segments, i, i+1)
	return true
}

// RemovePoint deletes p together with every segment incident to it.
func (g *Graph) RemovePoint(p geo.Point) bool {
	i := slices.Index(g.Points, p)
	if i < 0 {
		return false
	}
	g.Segments = slices.DeleteFunc(g.Segments, func(s geo.Segment) bool {
		return s.Includes(p)
	})
	g.Points = slices.Delete(g.Points, i, i+1)
	return true
}

// Dispose removes all points and segments.
func (g *Graph) Dispose() {
	g.Points = g.Points[:0]
	g.Segments = g.Segments[:0]
}

// Intersections returns the points with more than minDegree incident
// segments, in the order they first appear among the segments.
func (g *Graph) Intersections(minDegree int) []geo.Point {
	counts := make(map[geo.Point]int)
	var order []geo.Point
	for _, s := range g.Segments {
		for _, p := range []geo.Point{s.P1, s.P2} {
			if counts[p] == 0 {
				order = append(order, p)
			}
			counts[p]++
		}
	}
	var out []geo.Point
	for _, p := range order {
		if counts[p] > minDegree {
			out = append(out, p)
		}
	}
	return out
}

// Hash returns a stable digest of the graph content. Drivers compare it with
// the hash of the last generation to decide whether to regenerate.
func (g *Graph) Hash() string {
	data, err := json.Marshal(g)
	if err != nil {
		// Points and segments are plain floats; only NaN/Inf can fail here.
		data = []byte(fmt.Sprintf("%v", *g))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
