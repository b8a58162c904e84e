package validation

import (
	"fmt"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/markings"
)

// ValidateSchema performs Level 1 (schema) validation on a parsed Project.
// It checks structural correctness before any geometry is generated.
func ValidateSchema(p *config.Project) *Report {
	r := NewReport()

	validateWidths(p.Options, r)
	validateSpacing(p.Options, r)
	validateTiming(p.Options, r)
	validateMarkings(p, r)

	return r
}

func positive(r *Report, path string, v float64) {
	if v <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0", path),
			Path:        path,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}

func validateWidths(o config.Options, r *Report) {
	positive(r, "options.roadWidth", o.RoadWidth)
	positive(r, "options.buildingWidth", o.BuildingWidth)
	positive(r, "options.buildingMinLength", o.BuildingMinLength)
	positive(r, "options.treeSize", o.TreeSize)

	if o.Roundness < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "roundness must not be negative",
			Path:        "options.roundness",
			ActualValue: o.Roundness,
			Expected:    ">= 0",
		})
	}
}

func validateSpacing(o config.Options, r *Report) {
	if o.Spacing < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("spacing %.2f must not be negative", o.Spacing),
			Path:        "options.spacing",
			ActualValue: o.Spacing,
			Expected:    ">= 0",
		})
	}
	if o.BuildingMinLength > 0 && o.BuildingMinLength+o.Spacing <= 0 {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "buildingMinLength + spacing must be positive",
			Path:         "options.spacing",
			ConflictWith: "options.buildingMinLength",
		})
	}
}

func validateTiming(o config.Options, r *Report) {
	if o.GreenDuration <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "greenDuration must be at least one tick",
			Path:        "options.greenDuration",
			ActualValue: o.GreenDuration,
			Expected:    ">= 1",
		})
	}
	if o.YellowDuration < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "yellowDuration must not be negative",
			Path:        "options.yellowDuration",
			ActualValue: o.YellowDuration,
			Expected:    ">= 0",
		})
	}
}

func validateMarkings(p *config.Project, r *Report) {
	lights := 0
	for i, m := range p.Markings {
		path := fmt.Sprintf("markings[%d]", i)
		if _, err := markings.Load(m); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     err.Error(),
				Path:        path + ".type",
				ActualValue: string(m.Type),
				Suggestions: []string{"Use one of: cross, light, park, start, stop, target, yield"},
			})
			continue
		}
		if m.Direction.Length() == 0 {
			r.AddWarning(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("%s has a zero direction vector; it will face +x", path),
				Path:    path + ".direction",
			})
		}
		if m.Type == markings.KindLight {
			lights++
		}
	}
	if lights > 0 && len(p.Graph.Points) == 0 {
		r.AddWarning(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("%d lights but the graph is empty; no control centers will be created", lights),
			Path:    "markings",
		})
	}
}
