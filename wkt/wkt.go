// Package wkt encodes footprint rings as 3D well-known-text polygons
// insertable through ST_GeomFromText.
package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// MarshalPolygonZ encodes a ring as POLYGONZ((lon lat 0, ...)) with the
// elevation fixed at 0 for every vertex. The output ring is always
// explicitly closed, an open input ring is closed by repeating its first
// point.
func MarshalPolygonZ(ring orb.Ring) (string, error) {
	if len(ring) < 3 {
		return "", fmt.Errorf("polygon needs at least 3 points, got %d", len(ring))
	}
	if ring.Closed() && len(ring) < 4 {
		return "", fmt.Errorf("closed polygon needs at least 3 distinct points, got %d", len(ring)-1)
	}

	var b strings.Builder
	b.WriteString("POLYGONZ((")
	for i, p := range ring {
		if i > 0 {
			b.WriteString(", ")
		}
		writeVertex(&b, p)
	}
	if !ring.Closed() {
		b.WriteString(", ")
		writeVertex(&b, ring[0])
	}
	b.WriteString("))")
	return b.String(), nil
}

func writeVertex(b *strings.Builder, p orb.Point) {
	b.WriteString(strconv.FormatFloat(p[0], 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p[1], 'f', -1, 64))
	b.WriteString(" 0")
}
