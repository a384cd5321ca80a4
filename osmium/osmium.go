// Package osmium wraps the osmium-tool binary used by the local-extract
// pipeline to clip a region and export its buildings as GeoJSON.
package osmium

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/paulmach/orb"

	"github.com/royalcat/osmbuildings/bbox"
)

const installHint = `install it with:
  Ubuntu/Debian: sudo apt install osmium-tool
  macOS:         brew install osmium-tool
  Windows:       https://osmcode.org/osmium-tool/`

// Check probes for osmium-tool up front so a missing binary fails the
// run before anything is downloaded.
func Check(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "osmium", "--version").Run(); err != nil {
		return fmt.Errorf("osmium-tool is not installed (%w), %s", err, installHint)
	}
	return nil
}

// Extract clips the input pbf to the bounding box.
func Extract(ctx context.Context, box bbox.BBox, in, out string) error {
	return run(ctx, "extract", "--overwrite", "--bbox", box.String(), in, "-o", out)
}

// Export converts the clipped pbf into a GeoJSON feature collection
// using a configuration written by WriteExportConfig.
func Export(ctx context.Context, config, pbf, out string) error {
	return run(ctx, "export", "--overwrite",
		"--config", config,
		"--output-format", "geojson",
		"--output", out,
		pbf)
}

func run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "osmium", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osmium %s: %w", args[0], err)
	}
	return nil
}

// ExportConfig mirrors the osmium export configuration file format.
type ExportConfig struct {
	Attributes map[string]string `json:"attributes"`
	Filters    struct {
		Area areaFilter `json:"area"`
	} `json:"filters"`
	Features []Feature `json:"features"`
}

type areaFilter struct {
	Type        string      `json:"type"`
	Coordinates orb.Polygon `json:"coordinates"`
}

type Feature struct {
	Name          string            `json:"name"`
	GeometryTypes []string          `json:"geometry_types"`
	Filters       featureFilters    `json:"filters"`
	Attributes    map[string]string `json:"attributes"`
}

type featureFilters struct {
	Tags map[string]string `json:"tags"`
}

// BuildingsExportConfig describes the buildings feature export: any way
// with a building tag inside the box, with the tags the height estimator
// and the sink care about mapped to feature properties.
func BuildingsExportConfig(box bbox.BBox) ExportConfig {
	config := ExportConfig{
		Attributes: map[string]string{
			"type": "string",
			"id":   "string",
		},
		Features: []Feature{{
			Name:          "buildings",
			GeometryTypes: []string{"Polygon"},
			Filters:       featureFilters{Tags: map[string]string{"building": "~."}},
			Attributes: map[string]string{
				"name":          "name",
				"height":        "height",
				"building_type": "building",
				"address":       "addr:street",
				"levels":        "building:levels",
			},
		}},
	}
	config.Filters.Area = areaFilter{
		Type:        "Polygon",
		Coordinates: orb.Polygon{box.Ring()},
	}
	return config
}

// WriteExportConfig writes the buildings export configuration to path.
func WriteExportConfig(path string, box bbox.BBox) error {
	data, err := json.MarshalIndent(BuildingsExportConfig(box), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing osmium config: %w", err)
	}
	return nil
}
