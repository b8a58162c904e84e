package validation

import (
	"testing"

	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/graph"
)

func disconnectedGraph() *graph.Graph {
	g := graph.New()
	g.TryAddPoint(geo.Pt(0, 0))
	g.TryAddPoint(geo.Pt(100, 0))
	g.TryAddSegment(geo.Seg(geo.Pt(0, 0), geo.Pt(100, 0)))
	g.TryAddPoint(geo.Pt(500, 500))
	return g
}

func TestReportSeverities(t *testing.T) {
	p := validProject()
	p.Options.RoadWidth = 0
	p.Markings[0].Direction = geo.Pt(0, 0)

	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("zero road width should invalidate the report")
	}
	if len(r.Errors) != 1 || r.Errors[0].Severity != SeverityError {
		t.Fatalf("expected one error-severity result, got %v", r.Errors)
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Severity != SeverityWarning {
		t.Fatalf("expected one warning-severity result, got %v", r.Warnings)
	}
	if r.Warnings[0].Path != "markings[0].direction" {
		t.Errorf("unexpected warning path %q", r.Warnings[0].Path)
	}
	if r.Summary != "1 errors, 1 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestTopologyFindingsStayValid(t *testing.T) {
	r := ValidateSchema(validProject())
	r.Merge(ValidateTopology(disconnectedGraph()))

	if !r.Valid {
		t.Error("topology warnings should not invalidate a valid schema report")
	}
	if r.Summary != "0 errors, 2 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
	for _, res := range r.Info {
		if res.Severity != SeverityInfo {
			t.Errorf("info result has severity %s", res.Severity)
		}
	}
}

func TestMergeKeepsInvalid(t *testing.T) {
	bad := validProject()
	bad.Options.GreenDuration = 0

	r := ValidateTopology(disconnectedGraph())
	r.Merge(ValidateSchema(bad))
	if r.Valid {
		t.Error("merging a schema error should invalidate the report")
	}

	// A later clean stage does not restore validity.
	r.Merge(ValidateSchema(validProject()))
	if r.Valid {
		t.Error("report became valid again after merging a clean stage")
	}
	if len(r.Errors) != 1 || r.Errors[0].Path != "options.greenDuration" {
		t.Errorf("unexpected errors %v", r.Errors)
	}
}

func TestResultString(t *testing.T) {
	p := validProject()
	p.Options.RoadWidth = 0
	got := ValidateSchema(p).Errors[0].String()
	if want := "[schema] options.roadWidth: options.roadWidth must be greater than 0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	g := graph.New()
	g.TryAddPoint(geo.Pt(0, 0))
	g.TryAddPoint(geo.Pt(100, 0))
	g.TryAddSegment(geo.Seg(geo.Pt(0, 0), geo.Pt(100, 0)))
	got = ValidateTopology(g).Info[0].String()
	if want := "[topology] 2 points, 1 segments, 0 intersections"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestErr(t *testing.T) {
	if err := ValidateSchema(validProject()).Err(); err != nil {
		t.Errorf("valid project produced error %v", err)
	}

	p := validProject()
	p.Options.RoadWidth = 0
	p.Options.TreeSize = 0
	err := ValidateSchema(p).Err()
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "2 validation errors: [schema] options.roadWidth: options.roadWidth must be greater than 0; " +
		"[schema] options.treeSize: options.treeSize must be greater than 0"
	if err.Error() != want {
		t.Errorf("Err() = %q, want %q", err, want)
	}
}

func TestAtLevel(t *testing.T) {
	p := validProject()
	p.Markings[0].Direction = geo.Pt(0, 0)
	r := ValidateSchema(p)
	r.Merge(ValidateTopology(disconnectedGraph()))

	topo := r.AtLevel(LevelTopology)
	if len(topo) != 3 {
		t.Fatalf("expected 3 topology results, got %d: %v", len(topo), topo)
	}
	if topo[0].Severity != SeverityWarning || topo[2].Severity != SeverityInfo {
		t.Errorf("results should be ordered by severity, got %v", topo)
	}
	if got := r.AtLevel(LevelSchema); len(got) != 1 {
		t.Errorf("expected 1 schema result, got %v", got)
	}
	if got := r.AtLevel(LevelSpatial); len(got) != 0 {
		t.Errorf("expected no spatial results, got %v", got)
	}
}
