package main

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/roadworld/pkg/markings"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"github.com/ChicagoDave/roadworld/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	fmt.Printf("Stages: schema %d, topology %d, spatial %d\n",
		len(r.AtLevel(validation.LevelSchema)),
		len(r.AtLevel(validation.LevelTopology)),
		len(r.AtLevel(validation.LevelSpatial)))
	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

// printLightStates prints one row per tick: every control center's lights
// as single letters, e.g. "tick   3  (0,0) R G R R".
func printLightStates(tick int, ccs []*traffic.ControlCenter) {
	fmt.Printf("tick %3d", tick)
	for _, cc := range ccs {
		letters := make([]string, 0, len(cc.Lights))
		for _, s := range cc.States() {
			letters = append(letters, stateLetter(s))
		}
		fmt.Printf("  (%.0f,%.0f) %s", cc.Center.X, cc.Center.Y, strings.Join(letters, " "))
	}
	fmt.Println()
}

func stateLetter(s markings.LightState) string {
	switch s {
	case markings.Green:
		return "G"
	case markings.Yellow:
		return "Y"
	default:
		return "R"
	}
}
