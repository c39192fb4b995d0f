package utils

import (
	"strconv"
	"strings"
)

// ResolveCoordinate picks one coordinate axis out of the two submission
// channels: the structured form value when it parsed, otherwise the first
// raw fallback key that parses as a float. Returns nil when neither channel
// yields a value; each axis is resolved independently of the other.
func ResolveCoordinate(primary *float64, raw ...string) *float64 {
	if primary != nil {
		return primary
	}
	for _, candidate := range raw {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if v, err := strconv.ParseFloat(candidate, 64); err == nil {
			return &v
		}
	}
	return nil
}
