// Package geocoding resolves free-text place names into coordinates.
package geocoding

import (
	"context"
	"errors"
	"strings"

	"fare-api/internal/models"
)

var (
	// ErrNotFound is returned when a provider has no match for the place.
	ErrNotFound = errors.New("geocoding: place not found")
	// ErrService is returned when the provider could not be queried.
	ErrService = errors.New("geocoding: service error")
)

// Geocoder resolves a place name to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (models.Coordinate, error)
}

// Normalize lower-cases a place name and collapses its whitespace.
func Normalize(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}
