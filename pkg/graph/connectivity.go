package graph

import (
	"cmp"
	"slices"

	"github.com/ChicagoDave/roadworld/pkg/geo"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components partitions the graph's points into connected components. Points
// within a component, and the components themselves, are ordered by their
// position in Points so the result is deterministic.
func (g *Graph) Components() [][]geo.Point {
	index := make(map[geo.Point]int64, len(g.Points))
	ug := simple.NewUndirectedGraph()
	for i, p := range g.Points {
		index[p] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, s := range g.Segments {
		a, okA := index[s.P1]
		b, okB := index[s.P2]
		if !okA || !okB || a == b {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}

	var ids [][]int64
	for _, comp := range topo.ConnectedComponents(ug) {
		c := make([]int64, len(comp))
		for i, n := range comp {
			c[i] = n.ID()
		}
		slices.Sort(c)
		ids = append(ids, c)
	}
	slices.SortFunc(ids, func(a, b []int64) int {
		return cmp.Compare(a[0], b[0])
	})

	out := make([][]geo.Point, len(ids))
	for i, c := range ids {
		out[i] = make([]geo.Point, len(c))
		for j, id := range c {
			out[i][j] = g.Points[id]
		}
	}
	return out
}

// Isolated returns the points that no segment touches.
func (g *Graph) Isolated() []geo.Point {
	var out []geo.Point
	for _, p := range g.Points {
		if !slices.ContainsFunc(g.Segments, func(s geo.Segment) bool { return s.Includes(p) }) {
			out = append(out, p)
		}
	}
	return out
}
