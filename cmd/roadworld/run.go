package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/scene2d"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"github.com/ChicagoDave/roadworld/pkg/validation"
	"github.com/ChicagoDave/roadworld/pkg/world"
)

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*config.Project, *validation.Report, error) {
	project, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	schemaReport := validation.ValidateSchema(project)
	return project, schemaReport, nil
}

// buildWorld validates the project and generates its world, merging every
// stage into one report.
func buildWorld(projectPath string) (*world.World, *validation.Report, error) {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, report, report.Err()
	}

	w, err := world.FromProject(project)
	if err != nil {
		return nil, report, err
	}
	report.Merge(validation.ValidateTopology(w.Graph))
	report.Merge(w.Generate(0))
	report.Merge(w.Validate())
	return w, report, nil
}

func runValidate(projectPath string) error {
	report, err := validateProject(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

// validateProject prints the validation report for a project. A project that
// fails validation yields its invalid report; a project that cannot be loaded
// or built at all yields an error instead.
func validateProject(projectPath string) (*validation.Report, error) {
	_, report, err := buildWorld(projectPath)
	if err != nil {
		if report != nil && !report.Valid {
			// buildWorld has already printed the schema report.
			return report, nil
		}
		return nil, err
	}
	printValidationReport(report)
	return report, nil
}

func runGenerate(projectPath string, asGeoJSON bool) error {
	w, report, err := buildWorld(projectPath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if asGeoJSON {
		return enc.Encode(scene2d.GeoJSON(w))
	}
	return enc.Encode(map[string]any{
		"validation": report,
		"scene":      scene2d.Assemble2D(w),
	})
}

func runSimulate(projectPath string, ticks int) error {
	w, report, err := buildWorld(projectPath)
	if err != nil {
		return err
	}
	if len(w.ControlCenters) == 0 {
		printValidationReport(report)
		return fmt.Errorf("world has no control centers to simulate")
	}

	for tick := 0; tick <= ticks; tick++ {
		w.Update(traffic.TickDuration * time.Duration(tick))
		printLightStates(tick, w.ControlCenters)
	}
	return nil
}
