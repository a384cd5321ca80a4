package buildings

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

// Property names written by the osmium export configuration.
var featureTagKeys = map[string]string{
	"name":          "name",
	"height":        "height",
	"levels":        "building:levels",
	"building_type": "building",
	"address":       "addr:street",
}

// FromFeatures converts osmium-exported building features into records.
// The outer ring of each polygon is taken as the footprint. Features
// without polygonal geometry are skipped and reported, never fatal.
func FromFeatures(log *slog.Logger, fc *geojson.FeatureCollection) ([]Record, Report) {
	var report Report

	var records []Record
	for i, feature := range fc.Features {
		ring, err := featureRing(feature.Geometry)
		if err != nil {
			report.skip(int64(i), "%s", err.Error())
			log.Warn("skipping feature", "index", i, "error", err.Error())
			continue
		}

		records = append(records, newRecord(featureTags(feature.Properties), len(records), ring))
	}

	report.Assembled = len(records)
	return records, report
}

func featureRing(geom orb.Geometry) (orb.Ring, error) {
	var ring orb.Ring
	switch g := geom.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil, fmt.Errorf("polygon has no rings")
		}
		ring = g[0]
	case orb.MultiPolygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return nil, fmt.Errorf("multipolygon has no rings")
		}
		ring = g[0][0]
	default:
		return nil, fmt.Errorf("unsupported geometry type %s", geom.GeoJSONType())
	}

	if len(ring) < 3 {
		return nil, fmt.Errorf("ring has only %d points", len(ring))
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring, nil
}

func featureTags(props geojson.Properties) osm.Tags {
	tags := make(osm.Tags, 0, len(featureTagKeys))
	for property, key := range featureTagKeys {
		if v := props.MustString(property, ""); v != "" {
			tags = append(tags, osm.Tag{Key: key, Value: v})
		}
	}
	tags.SortByKeyValue()
	return tags
}
