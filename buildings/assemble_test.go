package buildings_test

import (
	"log/slog"
	"testing"

	"github.com/paulmach/osm"
	"github.com/thejerf/slogassert"

	"github.com/royalcat/osmbuildings/buildings"
	"github.com/royalcat/osmbuildings/overpass"
)

func node(id int64, lat, lon float64) overpass.Element {
	return overpass.Element{Type: overpass.TypeNode, ID: id, Lat: lat, Lon: lon}
}

func way(id int64, tags map[string]string, nodes ...osm.NodeID) overpass.Element {
	return overpass.Element{Type: overpass.TypeWay, ID: id, Tags: tags, Nodes: nodes}
}

func squareNodes() []overpass.Element {
	return []overpass.Element{
		node(1, 21.4, 39.8),
		node(2, 21.4, 39.81),
		node(3, 21.41, 39.81),
		node(4, 21.41, 39.8),
	}
}

func TestAssembleBuilding(t *testing.T) {
	handler := slogassert.New(t, slog.LevelWarn, nil)
	log := slog.New(handler)

	elements := append(squareNodes(),
		way(10, map[string]string{"building": "yes", "building:levels": "4"}, 1, 2, 3, 4),
	)

	records, report := buildings.Assemble(log, elements)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if report.Assembled != 1 || len(report.Skipped) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	rec := records[0]
	if rec.Name != "Building 1" {
		t.Fatalf("expected default name 'Building 1', got %q", rec.Name)
	}
	if rec.Height != 12.0 {
		t.Fatalf("expected height 12.0, got %v", rec.Height)
	}
	if rec.BuildingType != "yes" {
		t.Fatalf("expected building type 'yes', got %q", rec.BuildingType)
	}
	if rec.Address != "Makkah, Saudi Arabia" {
		t.Fatalf("expected default address, got %q", rec.Address)
	}

	if len(rec.Ring) != 5 {
		t.Fatalf("expected closed ring of 5 points, got %d", len(rec.Ring))
	}
	if !rec.Ring.Closed() {
		t.Fatalf("expected closed ring, got %v", rec.Ring)
	}
	// lon comes first
	if rec.Ring[0][0] != 39.8 || rec.Ring[0][1] != 21.4 {
		t.Fatalf("expected lon,lat order, got %v", rec.Ring[0])
	}
}

func TestAssembleSkipsUnresolvableWay(t *testing.T) {
	handler := slogassert.New(t, slog.LevelWarn, nil)
	log := slog.New(handler)

	elements := append(squareNodes(),
		// only two of its references resolve
		way(10, map[string]string{"building": "yes"}, 1, 2, 100, 101),
		way(11, map[string]string{"building": "residential"}, 1, 2, 3, 4),
	)

	records, report := buildings.Assemble(log, elements)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "Building 1" {
		t.Fatalf("skipped way must not consume a name, got %q", records[0].Name)
	}

	if len(report.Skipped) != 1 {
		t.Fatalf("expected 1 skip, got %+v", report.Skipped)
	}
	if report.Skipped[0].ID != 10 {
		t.Fatalf("expected way 10 skipped, got %d", report.Skipped[0].ID)
	}

	handler.AssertMessage("skipping way, not enough points for a polygon")
}

func TestAssembleIgnoresNonBuildings(t *testing.T) {
	handler := slogassert.New(t, slog.LevelWarn, nil)
	log := slog.New(handler)

	elements := append(squareNodes(),
		way(10, map[string]string{"highway": "residential"}, 1, 2, 3, 4),
		way(11, nil, 1, 2, 3, 4),
	)

	records, _ := buildings.Assemble(log, elements)
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestAssembleNamedBuilding(t *testing.T) {
	handler := slogassert.New(t, slog.LevelWarn, nil)
	log := slog.New(handler)

	elements := append(squareNodes(),
		way(10, map[string]string{
			"building":    "mosque",
			"name":        "Masjid al-Haram",
			"addr:street": "Al Haram",
			"height":      "50ft",
		}, 1, 2, 3, 4),
	)

	records, _ := buildings.Assemble(log, elements)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Name != "Masjid al-Haram" {
		t.Fatalf("expected tagged name, got %q", rec.Name)
	}
	if rec.Address != "Al Haram" {
		t.Fatalf("expected tagged street, got %q", rec.Address)
	}
	if rec.BuildingType != "mosque" {
		t.Fatalf("expected tagged type, got %q", rec.BuildingType)
	}
	// 50ft is about 15.24m
	if rec.Height < 15.239 || rec.Height > 15.241 {
		t.Fatalf("expected height ~15.24, got %v", rec.Height)
	}
}
