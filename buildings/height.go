package buildings

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

const (
	metersPerFoot  = 0.3048
	metersPerLevel = 3.0
	defaultHeight  = 10.0
)

// heightRule derives a height in meters from the value of one tag key.
type heightRule struct {
	key   string
	parse func(value string) (float64, bool)
}

// Tried in order, first success wins. A value that fails to parse falls
// through to the next rule rather than aborting the estimate.
var heightRules = []heightRule{
	{key: "height", parse: parseLength},
	{key: "building:height", parse: parseLength},
	{key: "ele", parse: parseLength},
	{key: "building:levels", parse: parseLevels},
}

// EstimateHeight produces a positive height in meters from whatever
// height-ish tags are present, defaulting to 10m when nothing parses.
func EstimateHeight(tags osm.Tags) float64 {
	for _, rule := range heightRules {
		if h, ok := rule.parse(tags.Find(rule.key)); ok {
			return h
		}
	}
	return defaultHeight
}

// parseLength reads values like "15", "15 m" or "50ft". Bare numbers are
// taken as meters already, even though OSM tagging is not fully
// consistent about units. Changing that would change every estimated
// height, so the policy stays.
func parseLength(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	stripped := strings.ReplaceAll(value, "m", "")
	stripped = strings.ReplaceAll(stripped, "ft", "")
	n, err := strconv.ParseFloat(strings.TrimSpace(stripped), 64)
	if err != nil {
		return 0, false
	}

	if strings.Contains(strings.ToLower(value), "ft") {
		return n * metersPerFoot, true
	}
	return n, true
}

// parseLevels estimates 3 meters per floor.
func parseLevels(value string) (float64, bool) {
	levels, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return float64(levels) * metersPerLevel, true
}
