package world

import (
	"fmt"

	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/markings"
	"github.com/ChicagoDave/roadworld/pkg/validation"
	"github.com/samber/lo"
)

// Validate checks the generated world's structural guarantees: buildings
// never overlap, no tree stands on an occupied polygon, and every light is
// driven by exactly one control center.
func (w *World) Validate() *validation.Report {
	r := validation.NewReport()

	if len(w.Envelopes) != len(w.Graph.Segments) {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     "road envelopes are out of date with the graph",
			Path:        "envelopes",
			ActualValue: len(w.Envelopes),
			Expected:    fmt.Sprintf("%d", len(w.Graph.Segments)),
			Suggestions: []string{"Regenerate the world"},
		})
	}

	for i := range w.Buildings {
		for j := i + 1; j < len(w.Buildings); j++ {
			if w.Buildings[i].Base.Intersects(w.Buildings[j].Base) {
				r.AddError(validation.Result{
					Level:        validation.LevelSpatial,
					Message:      fmt.Sprintf("building %d overlaps building %d", i, j),
					Path:         fmt.Sprintf("buildings[%d]", i),
					ConflictWith: fmt.Sprintf("buildings[%d]", j),
				})
			}
		}
	}

	occ := w.Occupied()
	for i, t := range w.Trees {
		if lo.SomeBy(occ, func(p geo.Polygon) bool { return p.Contains(t.Center) }) {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("tree %d stands on a road or building", i),
				Path:        fmt.Sprintf("trees[%d]", i),
				ActualValue: t.Center,
			})
		}
	}

	lights := markings.Lights(w.Markings)
	if len(w.ControlCenters) == 0 {
		if len(lights) > 0 {
			r.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: "lights are present but no control center was built",
				Path:    "controlCenters",
			})
		}
		return r
	}

	owners := make(map[*markings.Light]int)
	for _, cc := range w.ControlCenters {
		for _, l := range cc.Lights {
			owners[l]++
		}
	}
	for i, l := range lights {
		if n := owners[l]; n != 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("light %d is driven by %d control centers", i, n),
				Path:        fmt.Sprintf("lights[%d]", i),
				ActualValue: n,
				Expected:    "1",
			})
		}
	}
	return r
}
