package fare

import "errors"

var (
	// ErrModelLoad is returned when the model artifact is missing or unusable.
	ErrModelLoad = errors.New("fare: model load failed")
	// ErrInvalidFeature is returned for malformed or missing feature values.
	ErrInvalidFeature = errors.New("fare: invalid feature")
)
