// Package training prepares the taxi trip dataset and fits the fare model.
package training

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"fare-api/internal/geo"
	"fare-api/internal/models"
)

// PickupTimeLayout is the timestamp format of the pickup_datetime column.
const PickupTimeLayout = "2006-01-02 15:04:05 MST"

// Trip is one cleaned dataset row.
type Trip struct {
	Fare       float64
	Pickup     models.Coordinate
	Dropoff    models.Coordinate
	PickedUpAt time.Time
	DistanceKm float64
	Hour       int
}

var requiredColumns = []string{
	"fare_amount",
	"pickup_datetime",
	"pickup_longitude",
	"pickup_latitude",
	"dropoff_longitude",
	"dropoff_latitude",
}

// ReadResult summarises a dataset read.
type ReadResult struct {
	Trips   []Trip
	Dropped int
}

// ReadTrips parses the trip CSV. Rows with empty or unparsable required
// values are skipped and counted in Dropped.
func ReadTrips(r io.Reader) (*ReadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("training: failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("training: missing column %q", col)
		}
	}

	result := &ReadResult{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("training: failed to read record: %w", err)
		}

		trip, ok := parseTrip(record, index)
		if !ok {
			result.Dropped++
			continue
		}
		result.Trips = append(result.Trips, trip)
	}

	return result, nil
}

func parseTrip(record []string, index map[string]int) (Trip, bool) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	number := func(name string) (float64, bool) {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	}

	fare, ok1 := number("fare_amount")
	pLon, ok2 := number("pickup_longitude")
	pLat, ok3 := number("pickup_latitude")
	dLon, ok4 := number("dropoff_longitude")
	dLat, ok5 := number("dropoff_latitude")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return Trip{}, false
	}

	pickedUpAt, err := time.Parse(PickupTimeLayout, field("pickup_datetime"))
	if err != nil {
		return Trip{}, false
	}
	pickedUpAt = pickedUpAt.UTC()

	pickup := models.Coordinate{Latitude: pLat, Longitude: pLon}
	dropoff := models.Coordinate{Latitude: dLat, Longitude: dLon}

	return Trip{
		Fare:       fare,
		Pickup:     pickup,
		Dropoff:    dropoff,
		PickedUpAt: pickedUpAt,
		DistanceKm: math.RoundToEven(geo.Distance(pickup, dropoff)*100) / 100,
		Hour:       pickedUpAt.Hour(),
	}, true
}

// Clean removes outliers: implausible distances, non-positive fares and
// fare/distance combinations that cannot be real trips.
func Clean(trips []Trip) []Trip {
	kept := make([]Trip, 0, len(trips))
	for _, t := range trips {
		switch {
		case t.DistanceKm > 60:
		case t.DistanceKm == 0:
		case t.Fare <= 0:
		case t.Fare > 100 && t.DistanceKm < 1:
		case t.Fare < 100 && t.DistanceKm > 100:
		default:
			kept = append(kept, t)
		}
	}
	return kept
}
