package domain

import (
	"math"

	"github.com/umahmood/haversine"
)

// Mean Earth radius used by the haversine package.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometres,
// unrounded.
func HaversineKm(a, b Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}

// RoundKm rounds to two decimal places, the precision reported to clients.
func RoundKm(km float64) float64 {
	r := math.Round(km*100) / 100
	// Avoid rendering "-0.00".
	if r == 0 {
		return 0
	}
	return r
}
