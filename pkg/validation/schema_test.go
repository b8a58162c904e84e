package validation

import (
	"testing"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/graph"
	"github.com/ChicagoDave/roadworld/pkg/markings"
)

func validProject() *config.Project {
	return &config.Project{
		Name:    "test",
		Options: config.DefaultOptions(),
		Graph: graph.Graph{
			Points:   []geo.Point{geo.Pt(0, 0), geo.Pt(200, 0)},
			Segments: []geo.Segment{geo.Seg(geo.Pt(0, 0), geo.Pt(200, 0))},
		},
		Markings: []markings.Record{
			{Type: markings.KindLight, Center: geo.Pt(20, 10), Direction: geo.Pt(1, 0), Width: 40, Height: 10},
		},
	}
}

func TestValidateSchemaValid(t *testing.T) {
	r := ValidateSchema(validProject())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaRoadWidthZero(t *testing.T) {
	p := validProject()
	p.Options.RoadWidth = 0
	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if r.Errors[0].Path != "options.roadWidth" {
		t.Errorf("unexpected path %q", r.Errors[0].Path)
	}
}

func TestValidateSchemaNegativeRoundness(t *testing.T) {
	p := validProject()
	p.Options.Roundness = -1
	if ValidateSchema(p).Valid {
		t.Error("negative roundness should be rejected")
	}
}

func TestValidateSchemaZeroRoundnessAllowed(t *testing.T) {
	p := validProject()
	p.Options.Roundness = 0
	if r := ValidateSchema(p); !r.Valid {
		t.Errorf("roundness 0 should be valid: %v", r.Errors)
	}
}

func TestValidateSchemaTiming(t *testing.T) {
	p := validProject()
	p.Options.GreenDuration = 0
	p.Options.YellowDuration = -1
	r := ValidateSchema(p)
	if len(r.Errors) != 2 {
		t.Errorf("expected 2 timing errors, got %d: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaUnknownMarking(t *testing.T) {
	p := validProject()
	p.Markings = append(p.Markings, markings.Record{Type: "billboard", Direction: geo.Pt(1, 0)})
	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("unknown marking type should be an error")
	}
	if r.Errors[0].Path != "markings[1].type" {
		t.Errorf("unexpected path %q", r.Errors[0].Path)
	}
}

func TestValidateSchemaLightsWithoutGraph(t *testing.T) {
	p := validProject()
	p.Graph = graph.Graph{}
	r := ValidateSchema(p)
	if !r.Valid {
		t.Error("missing graph should only warn")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(r.Warnings))
	}
}

func TestValidateTopology(t *testing.T) {
	g := graph.New()
	g.TryAddPoint(geo.Pt(0, 0))
	g.TryAddPoint(geo.Pt(100, 0))
	g.TryAddSegment(geo.Seg(geo.Pt(0, 0), geo.Pt(100, 0)))
	g.TryAddPoint(geo.Pt(500, 500))

	r := ValidateTopology(g)
	if !r.Valid {
		t.Error("topology findings should never invalidate")
	}
	// One isolated point, two components.
	if len(r.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(r.Warnings), r.Warnings)
	}
}

func TestValidateTopologyEmpty(t *testing.T) {
	r := ValidateTopology(graph.New())
	if !r.Valid || len(r.Info) != 1 {
		t.Errorf("expected a single info entry, got %v", r.Info)
	}
}
