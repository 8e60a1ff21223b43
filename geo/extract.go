// Package geo resolves free-form issue location strings to map coordinates.
package geo

import (
	"regexp"
	"strconv"
)

// Coordinate is a latitude/longitude pair derived from a location string.
// It is recomputed on demand and never stored on the issue.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fallback is the regional center point used when a location string carries
// no usable coordinate.
var Fallback = Coordinate{Latitude: 22.56, Longitude: 72.95}

// Matches the numeric parts of "Lat: 22.56, Lng: 72.95" and bare
// "22.56, 72.95" pairs. Labels and separators are ignored; the first two
// signed decimals win. An address that happens to start with two numbers
// misparses the same way the original client did.
var numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// ExtractCoordinate parses a location string into a coordinate. It never
// fails: a string with no embedded pair, an unparsable pair, or an
// out-of-range pair resolves to Fallback.
func ExtractCoordinate(location string) Coordinate {
	nums := numberPattern.FindAllString(location, 2)
	if len(nums) < 2 {
		return Fallback
	}

	lat, err := strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return Fallback
	}
	lng, err := strconv.ParseFloat(nums[1], 64)
	if err != nil {
		return Fallback
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Fallback
	}

	return Coordinate{Latitude: lat, Longitude: lng}
}

// CoordinateFor prefers an issue's stored latitude/longitude when both are
// present and falls back to extracting from the location string.
func CoordinateFor(lat, lng *float64, location string) Coordinate {
	if lat != nil && lng != nil {
		if *lat >= -90 && *lat <= 90 && *lng >= -180 && *lng <= 180 {
			return Coordinate{Latitude: *lat, Longitude: *lng}
		}
	}
	return ExtractCoordinate(location)
}
