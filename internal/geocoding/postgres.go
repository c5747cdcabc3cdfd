package geocoding

import (
	"context"
	"fmt"

	"fare-api/internal/models"
)

// PlaceFinder looks a place up by name in the local gazetteer.
type PlaceFinder interface {
	FindPlace(ctx context.Context, name string) (*models.Place, error)
}

// GazetteerGeocoder resolves places from the local places table.
type GazetteerGeocoder struct {
	repo PlaceFinder
}

// NewGazetteerGeocoder creates a geocoder backed by the places repository.
func NewGazetteerGeocoder(repo PlaceFinder) *GazetteerGeocoder {
	return &GazetteerGeocoder{repo: repo}
}

// Geocode returns the coordinate of the best matching place.
func (g *GazetteerGeocoder) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	found, err := g.repo.FindPlace(ctx, place)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %w", ErrService, err)
	}
	if found == nil {
		return models.Coordinate{}, fmt.Errorf("%w: %q", ErrNotFound, place)
	}
	return found.Coordinate(), nil
}
