package markings

import (
	"errors"
	"math"
	"testing"

	"github.com/ChicagoDave/roadworld/pkg/geo"
)

func TestLoadEveryKind(t *testing.T) {
	for _, k := range []Kind{KindCross, KindLight, KindPark, KindStart, KindStop, KindTarget, KindYield} {
		m, err := Load(Record{Type: k, Center: geo.Pt(10, 10), Direction: geo.Pt(0, 1), Width: 40, Height: 10})
		if err != nil {
			t.Errorf("%s: unexpected error %v", k, err)
			continue
		}
		if m.Kind() != k {
			t.Errorf("expected kind %s, got %s", k, m.Kind())
		}
		if got := ToRecord(m); got.Type != k || got.Width != 40 || got.Center != geo.Pt(10, 10) {
			t.Errorf("%s: record round trip lost data: %+v", k, got)
		}
	}
}

func TestLoadUnknownKindFails(t *testing.T) {
	_, err := Load(Record{Type: "roundabout"})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	_, err = LoadAll([]Record{{Type: KindLight, Direction: geo.Pt(1, 0), Width: 10, Height: 5}, {Type: "x"}})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("LoadAll should propagate the failure, got %v", err)
	}
}

func TestShapeGeometry(t *testing.T) {
	s := NewShape(geo.Pt(0, 0), geo.Pt(1, 0), 20, 10)
	if d := s.Support.Length(); math.Abs(d-10) > 1e-9 {
		t.Errorf("support length should equal height, got %f", d)
	}
	if len(s.Polygon.Points) != 4 {
		t.Fatalf("expected rectangular outline, got %d points", len(s.Polygon.Points))
	}
	if a := s.Polygon.Area(); math.Abs(a-200) > 1e-6 {
		t.Errorf("expected area 200, got %f", a)
	}
}

func TestLightDefaultsToGreen(t *testing.T) {
	m, err := Load(Record{Type: KindLight, Center: geo.Pt(0, 0), Direction: geo.Pt(0, -1), Width: 30, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	l := m.(*Light)
	if l.State != Green {
		t.Errorf("expected green, got %s", l.State)
	}
}

func TestLightsFilter(t *testing.T) {
	ms, err := LoadAll([]Record{
		{Type: KindStop, Direction: geo.Pt(1, 0), Width: 10, Height: 5},
		{Type: KindLight, Direction: geo.Pt(1, 0), Width: 10, Height: 5},
		{Type: KindCross, Direction: geo.Pt(1, 0), Width: 10, Height: 5},
		{Type: KindLight, Direction: geo.Pt(0, 1), Width: 10, Height: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(Lights(ms)); got != 2 {
		t.Errorf("expected 2 lights, got %d", got)
	}
}
