// Package geo provides the great-circle distance calculation used to rank
// open jobs by proximity to a worker.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location pairs a coordinate with its human-readable address.
type Location struct {
	Point
	Address string `json:"address"`
}

// Distance returns the Haversine distance between two points in kilometers,
// rounded to one decimal place. Inputs are assumed to be valid decimal
// degrees; the function has no error conditions and no side effects.
func Distance(a, b Point) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}

func rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
