package wkt_test

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/royalcat/osmbuildings/wkt"
)

func TestMarshalPolygonZClosedRing(t *testing.T) {
	ring := orb.Ring{{39.8, 21.4}, {39.81, 21.4}, {39.81, 21.41}, {39.8, 21.4}}

	got, err := wkt.MarshalPolygonZ(ring)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "POLYGONZ((39.8 21.4 0, 39.81 21.4 0, 39.81 21.41 0, 39.8 21.4 0))"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMarshalPolygonZClosesOpenRing(t *testing.T) {
	ring := orb.Ring{{39.8, 21.4}, {39.81, 21.4}, {39.81, 21.41}}

	got, err := wkt.MarshalPolygonZ(ring)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "POLYGONZ((39.8 21.4 0, 39.81 21.4 0, 39.81 21.41 0, 39.8 21.4 0))"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMarshalPolygonZFirstAndLastVertexIdentical(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	got, err := wkt.MarshalPolygonZ(ring)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(got, "POLYGONZ(("), "))")
	vertices := strings.Split(inner, ", ")
	if len(vertices) != 5 {
		t.Fatalf("expected 5 vertices, got %d: %q", len(vertices), got)
	}
	if vertices[0] != vertices[len(vertices)-1] {
		t.Fatalf("ring not closed: %q != %q", vertices[0], vertices[len(vertices)-1])
	}
	for _, v := range vertices {
		if !strings.HasSuffix(v, " 0") {
			t.Fatalf("vertex %q has no zero elevation", v)
		}
	}
}

func TestMarshalPolygonZTooFewPoints(t *testing.T) {
	for _, ring := range []orb.Ring{
		nil,
		{{0, 0}},
		{{0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {0, 0}}, // closed but only 2 distinct points
	} {
		if _, err := wkt.MarshalPolygonZ(ring); err == nil {
			t.Fatalf("expected error for ring %v", ring)
		}
	}
}
