//go:build integration

package geocoding

import (
	"context"
	"testing"
	"time"

	"fare-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		redisC.Terminate(ctx)
	})

	host, err := redisC.Host(ctx)
	require.NoError(t, err)

	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestCachedGeocoder_Geocode(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client := setupTestRedis(t)
	ctx := context.Background()

	times := models.Coordinate{Latitude: 40.758, Longitude: -73.9855}

	next := new(MockGeocoder)
	next.On("Geocode", mock.Anything, "Times Square").Return(times, nil).Once()
	next.On("Geocode", mock.Anything, "Atlantis").Return(models.Coordinate{}, ErrNotFound).Twice()

	cached := NewCachedGeocoder(next, client, time.Minute)

	// Miss, then served from Redis under the normalised key.
	coord, err := cached.Geocode(ctx, "Times Square")
	require.NoError(t, err)
	assert.Equal(t, times, coord)

	coord, err = cached.Geocode(ctx, "  times   SQUARE ")
	require.NoError(t, err)
	assert.Equal(t, times, coord)

	ttl, err := client.TTL(ctx, "geocode:times square").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	// Failures are not cached.
	for i := 0; i < 2; i++ {
		_, err = cached.Geocode(ctx, "Atlantis")
		assert.ErrorIs(t, err, ErrNotFound)
	}

	next.AssertExpectations(t)
}

func TestCachedGeocoder_RedisDown(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	times := models.Coordinate{Latitude: 40.758, Longitude: -73.9855}
	next := new(MockGeocoder)
	next.On("Geocode", mock.Anything, "Times Square").Return(times, nil)

	coord, err := NewCachedGeocoder(next, client, time.Minute).Geocode(context.Background(), "Times Square")
	require.NoError(t, err)
	assert.Equal(t, times, coord)
}
