package handler

import (
	"errors"
	"net/http"

	"fare-api/internal/fare"
	"fare-api/internal/geocoding"
)

// errorStatus maps a service error to the HTTP status and the message shown to the client.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, fare.ErrInvalidFeature):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, geocoding.ErrNotFound):
		return http.StatusUnprocessableEntity, "could not find one of the places"
	case errors.Is(err, geocoding.ErrService):
		return http.StatusBadGateway, "geocoding service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
