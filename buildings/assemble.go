package buildings

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/royalcat/osmbuildings/overpass"
)

// Assemble resolves every way tagged as a building into a closed
// footprint record. Two passes over the element list: nodes are indexed
// first, then way node references are joined against that index.
// Unresolvable node references are dropped silently, a way left with
// fewer than 3 points cannot form a polygon and is skipped with a
// logged warning. One bad way never aborts the rest.
func Assemble(log *slog.Logger, elements []overpass.Element) ([]Record, Report) {
	var report Report

	nodes := make(map[osm.NodeID]orb.Point, len(elements))
	for _, el := range elements {
		if el.Type == overpass.TypeNode {
			nodes[osm.NodeID(el.ID)] = orb.Point{el.Lon, el.Lat}
		}
	}

	var records []Record
	for _, el := range elements {
		if el.Type != overpass.TypeWay {
			continue
		}
		if _, ok := el.Tags["building"]; !ok {
			continue
		}

		ring := make(orb.Ring, 0, len(el.Nodes)+1)
		for _, id := range el.Nodes {
			if p, ok := nodes[id]; ok {
				ring = append(ring, p)
			}
		}
		if len(ring) < 3 {
			report.skip(el.ID, "only %d of %d nodes resolved", len(ring), len(el.Nodes))
			log.Warn("skipping way, not enough points for a polygon",
				"way", el.ID, "resolved", len(ring), "refs", len(el.Nodes))
			continue
		}
		ring = append(ring, ring[0])

		records = append(records, newRecord(el.OSMTags(), len(records), ring))
	}

	report.Assembled = len(records)
	return records, report
}

func newRecord(tags osm.Tags, built int, ring orb.Ring) Record {
	name := tags.Find("name")
	if name == "" {
		name = fmt.Sprintf("Building %d", built+1)
	}
	buildingType := tags.Find("building")
	if buildingType == "" {
		buildingType = DefaultBuildingType
	}
	address := tags.Find("addr:street")
	if address == "" {
		address = DefaultAddress
	}

	return Record{
		Name:         name,
		Height:       EstimateHeight(tags),
		BuildingType: buildingType,
		Address:      address,
		Ring:         ring,
	}
}
