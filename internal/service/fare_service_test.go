package service

import (
	"context"
	"testing"

	"fare-api/internal/fare"
	"fare-api/internal/geo"
	"fare-api/internal/geocoding"
	"fare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (models.Coordinate, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

var (
	timesSquare = models.Coordinate{Latitude: 40.758, Longitude: -73.9855}
	jfk         = models.Coordinate{Latitude: 40.6413, Longitude: -73.7781}
)

func newTestPredictor(t *testing.T) *fare.Predictor {
	t.Helper()
	p, err := fare.NewPredictor(&fare.LinearModel{
		Features:     []string{"distance", "hour"},
		Coefficients: []float64{2, 0.1},
		Intercept:    4,
	})
	require.NoError(t, err)
	return p
}

func TestFareService_Quote(t *testing.T) {
	type geocodeCall struct {
		place string
		coord models.Coordinate
		err   error
	}

	tests := []struct {
		name        string
		pickup      string
		dropoff     string
		hour        string
		calls       []geocodeCall
		expectedErr []error
		expectFare  float64
	}{
		{
			name:    "successful quote",
			pickup:  "Times Square",
			dropoff: "JFK Airport",
			hour:    "17",
			calls: []geocodeCall{
				{place: "Times Square", coord: timesSquare},
				{place: "JFK Airport", coord: jfk},
			},
			// 21.77 km truncated to 21: 4 + 42 + 1.7
			expectFare: 47.7,
		},
		{
			name:        "missing pickup",
			pickup:      "  ",
			dropoff:     "JFK Airport",
			hour:        "17",
			expectedErr: []error{fare.ErrInvalidFeature},
		},
		{
			name:        "missing dropoff",
			pickup:      "Times Square",
			dropoff:     "",
			hour:        "17",
			expectedErr: []error{fare.ErrInvalidFeature},
		},
		{
			name:        "hour not an integer",
			pickup:      "Times Square",
			dropoff:     "JFK Airport",
			hour:        "evening",
			expectedErr: []error{fare.ErrInvalidFeature},
		},
		{
			name:    "pickup not found",
			pickup:  "Atlantis",
			dropoff: "JFK Airport",
			hour:    "17",
			calls: []geocodeCall{
				{place: "Atlantis", err: geocoding.ErrNotFound},
			},
			expectedErr: []error{ErrGeocoding, geocoding.ErrNotFound},
		},
		{
			name:    "dropoff provider failure",
			pickup:  "Times Square",
			dropoff: "JFK Airport",
			hour:    "17",
			calls: []geocodeCall{
				{place: "Times Square", coord: timesSquare},
				{place: "JFK Airport", err: geocoding.ErrService},
			},
			expectedErr: []error{ErrGeocoding, geocoding.ErrService},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGeo := new(MockGeocoder)
			for _, c := range tt.calls {
				mockGeo.On("Geocode", mock.Anything, c.place).Return(c.coord, c.err)
			}
			service := NewFareService(mockGeo, newTestPredictor(t))

			quote, err := service.Quote(context.Background(), tt.pickup, tt.dropoff, tt.hour)

			if len(tt.expectedErr) > 0 {
				for _, e := range tt.expectedErr {
					assert.ErrorIs(t, err, e)
				}
				assert.Nil(t, quote)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.expectFare, quote.Fare, 1e-9)
				assert.Equal(t, timesSquare, quote.Pickup)
				assert.Equal(t, jfk, quote.Dropoff)
				assert.Equal(t, 17, quote.Hour)
			}

			mockGeo.AssertExpectations(t)
		})
	}
}

func TestFareService_QuoteCoordinates(t *testing.T) {
	service := NewFareService(new(MockGeocoder), newTestPredictor(t))

	quote := service.QuoteCoordinates(timesSquare, jfk, 17)

	assert.InDelta(t, geo.Distance(timesSquare, jfk), quote.DistanceKm, 1e-12)
	assert.Equal(t, geo.Geohash(timesSquare, GeohashPrecision), quote.PickupGeohash)
	assert.Equal(t, geo.Geohash(jfk, GeohashPrecision), quote.DropoffGeohash)
	assert.Len(t, quote.PickupGeohash, GeohashPrecision)

	same := service.QuoteCoordinates(timesSquare, timesSquare, 3)
	assert.Equal(t, 0.0, same.DistanceKm)
	assert.Equal(t, fare.MinimumFare, same.Fare)
}

func TestFareService_PredictRaw(t *testing.T) {
	service := NewFareService(new(MockGeocoder), newTestPredictor(t))

	out, err := service.PredictRaw(map[string]float64{"distance": -10, "hour": 0})
	require.NoError(t, err)
	assert.InDelta(t, -16.0, out, 1e-9)

	_, err = service.PredictRaw(map[string]float64{"distance": 1})
	assert.ErrorIs(t, err, fare.ErrInvalidFeature)
}
