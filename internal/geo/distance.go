package geo

import (
	"math"

	"spotfinder-ai/internal/shared"
)

// earthRadiusKM is the mean radius of the Earth in kilometers.
const earthRadiusKM = 6371

// Distance computes the great-circle distance between two coordinates in
// kilometers using the haversine formula.
func Distance(a, b shared.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// DisplayDistance rounds a distance to one decimal place for display.
func DisplayDistance(km float64) float64 {
	return math.Round(km*10) / 10
}
