package overpass

import (
	"fmt"
	"strings"

	"github.com/royalcat/osmbuildings/bbox"
)

// Tag filters of the building union, most specific first. The bare
// ["building"] clause subsumes the others, they are kept separate so the
// server can answer the tagged subsets from its indexes.
var buildingFilters = []string{
	`["building"]["height"]`,
	`["building"]["building:levels"]`,
	`["building"]["building:height"]`,
	`["building"]`,
}

// BuildingsQuery returns an OverpassQL query selecting every building way
// inside the box, plus the nodes they reference (the trailing recurse).
func BuildingsQuery(box bbox.BBox) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:60];\n(\n")
	for _, filter := range buildingFilters {
		fmt.Fprintf(&b, "  way%s(%s);\n", filter, box)
	}
	b.WriteString(");\nout body;\n>;\nout skel qt;\n")
	return b.String()
}
