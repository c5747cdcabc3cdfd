package training

import (
	"fmt"

	"fare-api/internal/fare"
)

// Train fits fare ~ distance + hour on unscaled trip values.
//
// Distances here keep two decimals while the predictor truncates them to whole
// kilometres. Served fares are calibrated against that mismatch, keep both.
func Train(trips []Trip) (*fare.LinearModel, error) {
	if len(trips) == 0 {
		return nil, fmt.Errorf("training: no trips left after cleaning")
	}

	X := make([][]float64, len(trips))
	y := make([]float64, len(trips))
	for i, t := range trips {
		X[i] = []float64{t.DistanceKm, float64(t.Hour)}
		y[i] = t.Fare
	}

	model, err := fare.Fit([]string{fare.FeatureDistance, fare.FeatureHour}, X, y)
	if err != nil {
		return nil, fmt.Errorf("training: failed to fit model: %w", err)
	}
	return model, nil
}
