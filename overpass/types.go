package overpass

import "github.com/paulmach/osm"

const (
	TypeNode = "node"
	TypeWay  = "way"
)

// Response is the decoded body of an interpreter query.
type Response struct {
	Elements []Element `json:"elements"`
}

// Element is a raw OSM primitive as returned by the interpreter.
// Nodes carry lat/lon directly, ways reference nodes by id.
type Element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat,omitempty"`
	Lon   float64           `json:"lon,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
	Nodes []osm.NodeID      `json:"nodes,omitempty"`
}

// OSMTags converts the raw tag map into an osm.Tags list so callers can
// use the usual Find helpers. Order is normalized for determinism.
func (e Element) OSMTags() osm.Tags {
	tags := make(osm.Tags, 0, len(e.Tags))
	for k, v := range e.Tags {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	tags.SortByKeyValue()
	return tags
}
