// Package buildings turns raw OSM data into footprint records with an
// estimated height, ready for the database sink.
package buildings

import (
	"fmt"

	"github.com/paulmach/orb"
)

const (
	DefaultBuildingType = "unknown"
	DefaultAddress      = "Makkah, Saudi Arabia"
)

// Record is one building bound for the database. It only lives in memory
// for the duration of a run.
type Record struct {
	Name         string
	Height       float64 // meters
	BuildingType string
	Address      string
	Ring         orb.Ring // closed, lon/lat order
}

// Report accounts for what a conversion produced and what it had to drop,
// so a run can state its losses instead of silently skipping.
type Report struct {
	Assembled int
	Skipped   []Skip
}

// Skip records one dropped input with the source element id (or feature
// index for the geojson pipeline) and the reason.
type Skip struct {
	ID     int64
	Reason string
}

func (r *Report) skip(id int64, format string, args ...any) {
	r.Skipped = append(r.Skipped, Skip{ID: id, Reason: fmt.Sprintf(format, args...)})
}
