package validation

import (
	"fmt"

	"github.com/ChicagoDave/roadworld/pkg/graph"
)

// ValidateTopology reports on the shape of the road graph. None of its
// findings block generation: a disconnected or empty network is still a
// valid world.
func ValidateTopology(g *graph.Graph) *Report {
	r := NewReport()

	if len(g.Points) == 0 {
		r.AddInfo(Result{
			Level:   LevelTopology,
			Message: "graph is empty; the generated world will be empty",
			Path:    "graph",
		})
		return r
	}

	for _, p := range g.Isolated() {
		r.AddWarning(Result{
			Level:       LevelTopology,
			Message:     fmt.Sprintf("point (%.1f, %.1f) has no segments", p.X, p.Y),
			Path:        "graph.points",
			ActualValue: p,
		})
	}

	if comps := g.Components(); len(comps) > 1 {
		r.AddWarning(Result{
			Level:       LevelTopology,
			Message:     fmt.Sprintf("road network has %d disconnected components", len(comps)),
			Path:        "graph",
			ActualValue: len(comps),
			Expected:    "1",
			Suggestions: []string{"Connect the components or remove stray points"},
		})
	}

	r.AddInfo(Result{
		Level: LevelTopology,
		Message: fmt.Sprintf("%d points, %d segments, %d intersections",
			len(g.Points), len(g.Segments), len(g.Intersections(2))),
	})
	return r
}
