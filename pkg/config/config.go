// Package config loads road-world projects: generator options, the road
// graph and the markings placed on it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChicagoDave/roadworld/pkg/graph"
	"github.com/ChicagoDave/roadworld/pkg/markings"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the file LoadProject looks for in a project directory.
const ProjectFile = "world.yaml"

// Options controls world generation. Lengths are in world units.
type Options struct {
	RoadWidth         float64 `yaml:"roadWidth" json:"roadWidth"`
	Roundness         int     `yaml:"roundness" json:"roundness"`
	BuildingWidth     float64 `yaml:"buildingWidth" json:"buildingWidth"`
	BuildingMinLength float64 `yaml:"buildingMinLength" json:"buildingMinLength"`
	Spacing           float64 `yaml:"spacing" json:"spacing"`
	TreeSize          float64 `yaml:"treeSize" json:"treeSize"`
	GreenDuration     int     `yaml:"greenDuration" json:"greenDuration"`   // ticks
	YellowDuration    int     `yaml:"yellowDuration" json:"yellowDuration"` // ticks
	Seed              uint64  `yaml:"seed" json:"seed"`                     // tree sampling
}

// DefaultOptions returns the options used for any field a project omits.
func DefaultOptions() Options {
	return Options{
		RoadWidth:         100,
		Roundness:         3,
		BuildingWidth:     150,
		BuildingMinLength: 150,
		Spacing:           50,
		TreeSize:          100,
		GreenDuration:     traffic.DefaultGreenTicks,
		YellowDuration:    traffic.DefaultYellowTicks,
		Seed:              1,
	}
}

// Timing returns the traffic-light phase lengths.
func (o Options) Timing() traffic.Timing {
	return traffic.Timing{Green: o.GreenDuration, Yellow: o.YellowDuration}
}

// Project is the on-disk description of a world.
type Project struct {
	Name     string            `yaml:"name" json:"name"`
	Options  Options           `yaml:"options" json:"options"`
	Graph    graph.Graph       `yaml:"graph" json:"graph"`
	Markings []markings.Record `yaml:"markings" json:"markings"`
}

// Load reads a project from a YAML file. Options missing from the file keep
// their defaults.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a project from YAML bytes.
func Parse(data []byte) (*Project, error) {
	p := Project{Options: DefaultOptions()}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	return &p, nil
}

// LoadProject loads a project from a project directory.
// It looks for world.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// Build materializes the graph and markings described by the project.
func (p *Project) Build() (*graph.Graph, []markings.Marking, error) {
	g, err := graph.Load(p.Graph)
	if err != nil {
		return nil, nil, fmt.Errorf("loading graph: %w", err)
	}
	ms, err := markings.LoadAll(p.Markings)
	if err != nil {
		return nil, nil, fmt.Errorf("loading markings: %w", err)
	}
	return g, ms, nil
}
