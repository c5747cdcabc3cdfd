package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fare-api/internal/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{
	"status": "OK",
	"results": [
		{
			"formatted_address": "Manhattan, NY 10036, USA",
			"geometry": {"location": {"lat": 40.758, "lng": -73.9855}}
		}
	]
}`

func newTestGoogleGeocoder(t *testing.T, maxRetries uint64, bodies ...string) (*GoogleGeocoder, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		i := int(n) - 1
		if i >= len(bodies) {
			i = len(bodies) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bodies[i]))
	}))
	t.Cleanup(server.Close)

	g, err := NewGoogleGeocoder("AIzaTestKey", GoogleOptions{
		Timeout:    time.Second,
		MaxRetries: maxRetries,
		BaseURL:    server.URL,
	})
	require.NoError(t, err)
	g.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	return g, &calls
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	tests := []struct {
		name          string
		maxRetries    uint64
		bodies        []string
		expected      models.Coordinate
		expectedErr   error
		expectedCalls int32
	}{
		{
			name:          "first result is used",
			bodies:        []string{okBody},
			expected:      models.Coordinate{Latitude: 40.758, Longitude: -73.9855},
			expectedCalls: 1,
		},
		{
			name:          "zero results is not retried",
			maxRetries:    3,
			bodies:        []string{`{"status": "ZERO_RESULTS", "results": []}`},
			expectedErr:   ErrNotFound,
			expectedCalls: 1,
		},
		{
			name:          "denied request is not retried",
			maxRetries:    3,
			bodies:        []string{`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`},
			expectedErr:   ErrService,
			expectedCalls: 1,
		},
		{
			name:          "transient failure is retried",
			maxRetries:    2,
			bodies:        []string{`{"status": "UNKNOWN_ERROR"}`, okBody},
			expected:      models.Coordinate{Latitude: 40.758, Longitude: -73.9855},
			expectedCalls: 2,
		},
		{
			name:          "retries exhausted",
			maxRetries:    2,
			bodies:        []string{`{"status": "UNKNOWN_ERROR"}`},
			expectedErr:   ErrService,
			expectedCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, calls := newTestGoogleGeocoder(t, tt.maxRetries, tt.bodies...)

			coord, err := g.Geocode(context.Background(), "Times Square")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, coord)
			}
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestGoogleGeocoder_CancelledContext(t *testing.T) {
	g, _ := newTestGoogleGeocoder(t, 3, `{"status": "UNKNOWN_ERROR"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Geocode(ctx, "Times Square")
	assert.ErrorIs(t, err, ErrService)
}
