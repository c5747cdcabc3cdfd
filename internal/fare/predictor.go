package fare

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MinimumFare is the floor applied to every quoted fare.
const MinimumFare = 6.0

// Feature names a fare model must carry. Their order in the model is free.
const (
	FeatureDistance = "distance"
	FeatureHour     = "hour"
)

// Predictor turns trip features into fare estimates using a trained model.
type Predictor struct {
	model       *LinearModel
	distanceIdx int
	hourIdx     int
}

// NewPredictor wraps a model over exactly the distance and hour features.
// Any other shape is rejected.
func NewPredictor(model *LinearModel) (*Predictor, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrModelLoad)
	}
	if len(model.Features) != 2 || len(model.Coefficients) != 2 {
		return nil, fmt.Errorf("%w: expected a 2-feature model, got %d features", ErrModelLoad, len(model.Features))
	}

	distanceIdx := slices.Index(model.Features, FeatureDistance)
	hourIdx := slices.Index(model.Features, FeatureHour)
	if distanceIdx < 0 || hourIdx < 0 {
		return nil, fmt.Errorf("%w: expected features %q and %q, got %q",
			ErrModelLoad, FeatureDistance, FeatureHour, model.Features)
	}

	return &Predictor{model: model, distanceIdx: distanceIdx, hourIdx: hourIdx}, nil
}

// Predict returns the fare for a trip of distanceKm at the given hour.
//
// The distance is truncated toward zero before it reaches the model, the raw
// output is rounded to cents (half to even) and the result is never below
// MinimumFare.
func (p *Predictor) Predict(distanceKm float64, hour int) float64 {
	x := make([]float64, 2)
	x[p.distanceIdx] = math.Trunc(distanceKm)
	x[p.hourIdx] = float64(hour)

	// Shape is checked in NewPredictor.
	raw, _ := p.model.Predict(x)

	rounded := roundCents(raw)
	if !(rounded > MinimumFare) {
		return MinimumFare
	}
	return rounded
}

// PredictRaw evaluates the model on named feature values and returns its
// output untouched: no truncation, rounding or floor.
func (p *Predictor) PredictRaw(features map[string]float64) (float64, error) {
	names := p.model.Features

	x := make([]float64, len(names))
	for i, name := range names {
		v, ok := features[name]
		if !ok {
			return 0, fmt.Errorf("%w: missing feature %q", ErrInvalidFeature, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: feature %q is not finite", ErrInvalidFeature, name)
		}
		x[i] = v
	}

	if len(features) != len(names) {
		var unknown []string
		for name := range features {
			if !slices.Contains(names, name) {
				unknown = append(unknown, name)
			}
		}
		slices.Sort(unknown)
		return 0, fmt.Errorf("%w: unknown features %s", ErrInvalidFeature, strings.Join(unknown, ", "))
	}

	out, err := p.model.Predict(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("%w: prediction overflows for the given values", ErrInvalidFeature)
	}
	return out, nil
}

// ParseHour parses an hour-of-day form value. Only base-10 integers are
// accepted; the range is not checked.
func ParseHour(s string) (int, error) {
	hour, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q is not an integer", ErrInvalidFeature, s)
	}
	return hour, nil
}

func roundCents(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
