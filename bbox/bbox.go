// Package bbox handles the min-lat,min-lon,max-lat,max-lon bounding box
// notation shared by the Overpass API and the extraction tooling.
package bbox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type BBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Makkah is the default region, centered around 21.4225N 39.8262E.
var Makkah = BBox{MinLat: 21.3, MinLon: 39.7, MaxLat: 21.5, MaxLon: 39.9}

func Parse(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bounding box must be 4 comma separated values, got %q", s)
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bad bounding box value %q: %w", part, err)
		}
		vals[i] = v
	}

	b := BBox{MinLat: vals[0], MinLon: vals[1], MaxLat: vals[2], MaxLon: vals[3]}
	if b.MinLat >= b.MaxLat || b.MinLon >= b.MaxLon {
		return BBox{}, fmt.Errorf("bounding box %q has an empty extent", s)
	}
	return b, nil
}

func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

// Ring returns the closed box outline in lon,lat order.
func (b BBox) Ring() orb.Ring {
	return orb.Ring{
		{b.MinLon, b.MinLat},
		{b.MaxLon, b.MinLat},
		{b.MaxLon, b.MaxLat},
		{b.MinLon, b.MaxLat},
		{b.MinLon, b.MinLat},
	}
}
