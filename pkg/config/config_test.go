package config

import (
	"testing"

	"github.com/ChicagoDave/roadworld/pkg/markings"
)

func TestLoadProject(t *testing.T) {
	p, err := LoadProject("../../examples/crossroads")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if p.Name != "crossroads" {
		t.Errorf("name = %q, want %q", p.Name, "crossroads")
	}
	if p.Options.RoadWidth != 100 {
		t.Errorf("roadWidth = %v, want 100", p.Options.RoadWidth)
	}
	if p.Options.Roundness != 5 {
		t.Errorf("roundness = %d, want 5", p.Options.Roundness)
	}
	if p.Options.Seed != 7 {
		t.Errorf("seed = %d, want 7", p.Options.Seed)
	}
	if len(p.Graph.Points) != 5 || len(p.Graph.Segments) != 4 {
		t.Errorf("graph = %d points, %d segments, want 5 and 4", len(p.Graph.Points), len(p.Graph.Segments))
	}

	g, ms, err := p.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(g.Intersections(2)) != 1 {
		t.Errorf("expected one intersection, got %d", len(g.Intersections(2)))
	}
	if got := len(markings.Lights(ms)); got != 4 {
		t.Errorf("lights = %d, want 4", got)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	p, err := Parse([]byte("options:\n  roadWidth: 20\n  roundness: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultOptions()
	if p.Options.RoadWidth != 20 || p.Options.Roundness != 0 {
		t.Errorf("explicit options not applied: %+v", p.Options)
	}
	if p.Options.BuildingWidth != def.BuildingWidth || p.Options.GreenDuration != def.GreenDuration {
		t.Errorf("omitted options should keep defaults: %+v", p.Options)
	}
	if tm := p.Options.Timing(); tm.Green != 2 || tm.Yellow != 1 {
		t.Errorf("unexpected timing %+v", tm)
	}
}

func TestBuildRejectsUnknownMarking(t *testing.T) {
	p, err := Parse([]byte("markings:\n  - type: billboard\n    direction: {x: 1, y: 0}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := p.Build(); err == nil {
		t.Error("expected Build to fail on an unknown marking type")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("options: [")); err == nil {
		t.Error("expected parse error")
	}
}
