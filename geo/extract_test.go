package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCoordinateLabeled(t *testing.T) {
	cases := []struct {
		in       string
		lat, lng float64
	}{
		{"Lat: 22.56, Lng: 72.95", 22.56, 72.95},
		{"lat:22.56,lng:72.95", 22.56, 72.95},
		{"LAT: -33.87 , LNG: 151.21", -33.87, 151.21},
		{"Lat: 22.30178, Lng: 70.80216", 22.30178, 70.80216},
	}

	for _, tc := range cases {
		c := ExtractCoordinate(tc.in)
		assert.Equal(t, tc.lat, c.Latitude, tc.in)
		assert.Equal(t, tc.lng, c.Longitude, tc.in)
	}
}

func TestExtractCoordinateBarePair(t *testing.T) {
	c := ExtractCoordinate("22.56, 72.95")
	assert.Equal(t, 22.56, c.Latitude)
	assert.Equal(t, 72.95, c.Longitude)

	c = ExtractCoordinate("-12.5 77.0")
	assert.Equal(t, -12.5, c.Latitude)
	assert.Equal(t, 77.0, c.Longitude)
}

func TestExtractCoordinateFallback(t *testing.T) {
	for _, in := range []string{
		"",
		"Anand Market, near the old bridge",
		"Only one number: 42",
		"Lat: 95.0, Lng: 72.95",   // latitude out of range
		"Lat: 22.56, Lng: 181.0",  // longitude out of range
		"Lat: -91, Lng: -181",
	} {
		assert.Equal(t, Fallback, ExtractCoordinate(in), in)
	}
}

// An address with two leading numbers extracts those numbers, not the real
// coordinate further along. The original client behaved this way and map
// placement depends on keeping it.
func TestExtractCoordinateAddressMisparse(t *testing.T) {
	c := ExtractCoordinate("12 Main Street, Ward 7, Lat: 22.56, Lng: 72.95")
	assert.Equal(t, 12.0, c.Latitude)
	assert.Equal(t, 7.0, c.Longitude)
}

func TestCoordinateFor(t *testing.T) {
	lat, lng := 23.03, 72.58
	c := CoordinateFor(&lat, &lng, "ignored")
	assert.Equal(t, Coordinate{Latitude: 23.03, Longitude: 72.58}, c)

	// missing stored pair falls back to the location string
	c = CoordinateFor(nil, nil, "Lat: 22.56, Lng: 72.95")
	assert.Equal(t, Coordinate{Latitude: 22.56, Longitude: 72.95}, c)

	// stored pair out of range is distrusted
	bad := 200.0
	c = CoordinateFor(&bad, &lng, "no numbers here")
	assert.Equal(t, Fallback, c)
}
