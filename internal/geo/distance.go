// Package geo ranks vendors by great-circle distance from a reference point.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// Distance returns the haversine distance between a and b in kilometers.
// Points are orb points, i.e. {longitude, latitude} in degrees.
func Distance(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	deltaLat := lat2 - lat1
	deltaLng := toRadians(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Rounding can push h marginally outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Valid reports whether p is a usable coordinate.
func Valid(p orb.Point) bool {
	lat, lng := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
