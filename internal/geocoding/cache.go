package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fare-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder keeps successful lookups of the wrapped geocoder in Redis.
// Redis failures are logged and never fail a lookup.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
}

// NewCachedGeocoder wraps next with a Redis cache of the given TTL.
func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{next: next, client: client, ttl: ttl}
}

// Geocode serves place from the cache or falls through to the wrapped geocoder.
func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	key := cacheKeyPrefix + Normalize(place)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var coord models.Coordinate
		if jsonErr := json.Unmarshal(cached, &coord); jsonErr == nil {
			return coord, nil
		}
		log.Warn().Str("key", key).Msg("discarding malformed geocode cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("geocode cache read failed")
	}

	coord, err := c.next.Geocode(ctx, place)
	if err != nil {
		return models.Coordinate{}, err
	}

	payload, err := json.Marshal(coord)
	if err == nil {
		err = c.client.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("geocode cache write failed")
	}

	return coord, nil
}
