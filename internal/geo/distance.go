// Package geo holds the geographic helpers shared by training and serving.
package geo

import (
	"math"

	"fare-api/internal/models"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean radius of the spherical earth model.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between a and b
// using the haversine formula. Inputs are not validated.
func Distance(a, b models.Coordinate) float64 {
	latA := toRadians(a.Latitude)
	lonA := toRadians(a.Longitude)
	latB := toRadians(b.Latitude)
	lonB := toRadians(b.Longitude)

	dLon := lonB - lonA
	dLat := latB - latA

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(latA)*math.Cos(latB)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusKm * c
}

// Geohash encodes c as a geohash string of the given precision.
func Geohash(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
