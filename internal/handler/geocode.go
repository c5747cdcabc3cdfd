package handler

import (
	"context"
	"net/http"

	"fare-api/internal/geo"
	"fare-api/internal/models"
	"fare-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler handles geocoding requests
type GeoCodeHandler struct {
	geocoder Geocoder
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(context.Context, string) (models.Coordinate, error)
}

// GeocodeResponse is the body returned by GET /geocode.
type GeocodeResponse struct {
	Place string `json:"place"`
	models.Coordinate
	Geohash string `json:"geohash"`
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(geocoder Geocoder) *GeoCodeHandler {
	return &GeoCodeHandler{geocoder: geocoder}
}

// GeoCode handles GET /geocode requests so clients can check a place before quoting.
//
//	@Summary	Resolve a place name
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"Place name"
//	@Success	200	{object}	GeocodeResponse
//	@Failure	400,404,502	{object}	map[string]string
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	coord, err := h.geocoder.Geocode(c.Request.Context(), query)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusUnprocessableEntity {
			status, msg = http.StatusNotFound, "no location found for the given place"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Place:      query,
		Coordinate: coord,
		Geohash:    geo.Geohash(coord, service.GeohashPrecision),
	})
}
