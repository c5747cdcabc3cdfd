package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fare-api/internal/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves places with the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client     *maps.Client
	timeout    time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// GoogleOptions tune the Google geocoder.
type GoogleOptions struct {
	// Timeout bounds a single API call.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a failed call.
	MaxRetries uint64
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

// NewGoogleGeocoder creates a new GoogleGeocoder with the given API key.
func NewGoogleGeocoder(apiKey string, opts GoogleOptions) (*GoogleGeocoder, error) {
	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &GoogleGeocoder{
		client:     client,
		timeout:    timeout,
		maxRetries: opts.MaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}, nil
}

// Geocode returns the first result for place. Transient failures are retried
// with exponential backoff; an empty result is returned immediately as ErrNotFound.
func (g *GoogleGeocoder) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	var coord models.Coordinate
	attempt := 0

	op := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		results, err := g.client.Geocode(callCtx, &maps.GeocodingRequest{Address: place})
		if err != nil {
			if strings.Contains(err.Error(), "ZERO_RESULTS") {
				return backoff.Permanent(fmt.Errorf("%w: %q", ErrNotFound, place))
			}
			if isPermanentStatus(err) {
				return backoff.Permanent(fmt.Errorf("%w: %w", ErrService, err))
			}
			log.Warn().Err(err).Str("place", place).Int("attempt", attempt).Msg("geocoding request failed")
			return fmt.Errorf("%w: %w", ErrService, err)
		}
		if len(results) == 0 {
			return backoff.Permanent(fmt.Errorf("%w: %q", ErrNotFound, place))
		}

		loc := results[0].Geometry.Location
		coord = models.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(g.newBackOff(), g.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrService) {
			return models.Coordinate{}, err
		}
		return models.Coordinate{}, fmt.Errorf("%w: %w", ErrService, err)
	}
	return coord, nil
}

// isPermanentStatus reports API statuses that a retry cannot fix.
func isPermanentStatus(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "REQUEST_DENIED") || strings.Contains(msg, "INVALID_REQUEST")
}
