package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fare-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const indexTemplate = "index.html"

// indexPage is the data rendered into the form template.
type indexPage struct {
	Pickup         string
	Dropoff        string
	Hour           string
	PredictionText string
	Error          string
}

// FareHandler serves the fare prediction form and API.
type FareHandler struct {
	service FareService
}

// FareService interface for dependency injection
type FareService interface {
	Quote(ctx context.Context, pickup, dropoff, hour string) (*models.FareQuote, error)
	QuoteCoordinates(pickup, dropoff models.Coordinate, hour int) *models.FareQuote
	PredictRaw(features map[string]float64) (float64, error)
}

// NewFareHandler creates a new fare handler
func NewFareHandler(svc FareService) *FareHandler {
	return &FareHandler{service: svc}
}

// Home renders the prediction form.
func (h *FareHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, indexPage{})
}

// Predict handles POST /predict form submissions and renders the fare.
//
//	@Summary	Predict a fare from a form
//	@Tags		fare
//	@Accept		x-www-form-urlencoded
//	@Produce	html
//	@Param		pickup	formData	string	true	"Pickup place"
//	@Param		dropoff	formData	string	true	"Dropoff place"
//	@Param		hour	formData	int		true	"Hour of day"
//	@Success	200
//	@Failure	400,422,502
//	@Router		/predict [post]
func (h *FareHandler) Predict(c *gin.Context) {
	page := indexPage{
		Pickup:  c.PostForm("pickup"),
		Dropoff: c.PostForm("dropoff"),
		Hour:    c.PostForm("hour"),
	}

	quote, err := h.service.Quote(c.Request.Context(), page.Pickup, page.Dropoff, page.Hour)
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("pickup", page.Pickup).Str("dropoff", page.Dropoff).Msg("fare quote failed")
		}
		page.Error = msg
		c.HTML(status, indexTemplate, page)
		return
	}

	page.PredictionText = "Uber fare should be $" + formatFare(quote.Fare)
	c.HTML(http.StatusOK, indexTemplate, page)
}

// PredictAPI handles POST /predict_api requests.
//
//	@Summary		Raw model prediction
//	@Description	Evaluates the model on named features and returns its output without rounding or minimum fare.
//	@Tags			fare
//	@Accept			json
//	@Produce		json
//	@Param			features	body		map[string]number	true	"Feature values by name"
//	@Success		200			{number}	number
//	@Failure		400			{object}	map[string]string
//	@Router			/predict_api [post]
func (h *FareHandler) PredictAPI(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var features map[string]float64
	if err := json.Unmarshal(body, &features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object of numeric features"})
		return
	}

	out, err := h.service.PredictRaw(features)
	if err != nil {
		status, msg := errorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, out)
}

// Estimate handles POST /api/v1/estimate requests with known coordinates.
//
//	@Summary	Fare quote between two coordinates
//	@Tags		fare
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.EstimateRequest	true	"Trip"
//	@Success	200		{object}	models.FareQuote
//	@Failure	400		{object}	map[string]string
//	@Router		/api/v1/estimate [post]
func (h *FareHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.QuoteCoordinates(req.Pickup.Coordinate(), req.Dropoff.Coordinate(), *req.Hour))
}

// formatFare prints a fare with the shortest representation; whole amounts keep a ".0".
func formatFare(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
