package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fare-api/internal/fare"
	"fare-api/internal/geo"
	"fare-api/internal/models"

	"github.com/rs/zerolog/log"
)

// GeohashPrecision is the geohash length attached to quotes (about 150m cells).
const GeohashPrecision = 7

// ErrGeocoding wraps any failure to resolve a pickup or dropoff place.
var ErrGeocoding = errors.New("service: geocoding failed")

// FareService contains the business logic for fare quotes
type FareService struct {
	geocoder  Geocoder
	predictor Predictor
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(ctx context.Context, place string) (models.Coordinate, error)
}

// Predictor interface for dependency injection
type Predictor interface {
	Predict(distanceKm float64, hour int) float64
	PredictRaw(features map[string]float64) (float64, error)
}

// NewFareService creates a new fare service
func NewFareService(geocoder Geocoder, predictor Predictor) *FareService {
	return &FareService{geocoder: geocoder, predictor: predictor}
}

// Quote geocodes both places and predicts the floored fare for the trip.
func (s *FareService) Quote(ctx context.Context, pickup, dropoff, hour string) (*models.FareQuote, error) {
	pickup = strings.TrimSpace(pickup)
	dropoff = strings.TrimSpace(dropoff)
	if pickup == "" {
		return nil, fmt.Errorf("%w: pickup place is required", fare.ErrInvalidFeature)
	}
	if dropoff == "" {
		return nil, fmt.Errorf("%w: dropoff place is required", fare.ErrInvalidFeature)
	}

	h, err := fare.ParseHour(hour)
	if err != nil {
		return nil, err
	}

	from, err := s.geocoder.Geocode(ctx, pickup)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup %q: %w", ErrGeocoding, pickup, err)
	}

	to, err := s.geocoder.Geocode(ctx, dropoff)
	if err != nil {
		return nil, fmt.Errorf("%w: dropoff %q: %w", ErrGeocoding, dropoff, err)
	}

	return s.QuoteCoordinates(from, to, h), nil
}

// QuoteCoordinates predicts the floored fare between two known points.
func (s *FareService) QuoteCoordinates(pickup, dropoff models.Coordinate, hour int) *models.FareQuote {
	distance := geo.Distance(pickup, dropoff)
	amount := s.predictor.Predict(distance, hour)

	log.Debug().
		Float64("distance_km", distance).
		Int("hour", hour).
		Float64("fare", amount).
		Msg("fare quoted")

	return &models.FareQuote{
		Pickup:         pickup,
		Dropoff:        dropoff,
		PickupGeohash:  geo.Geohash(pickup, GeohashPrecision),
		DropoffGeohash: geo.Geohash(dropoff, GeohashPrecision),
		DistanceKm:     distance,
		Hour:           hour,
		Fare:           amount,
	}
}

// PredictRaw forwards named features to the model and returns its unclamped output.
func (s *FareService) PredictRaw(features map[string]float64) (float64, error) {
	out, err := s.predictor.PredictRaw(features)
	if err != nil {
		return 0, fmt.Errorf("service: failed to predict: %w", err)
	}
	return out, nil
}
