package models

// FareQuote is the result of a floored fare prediction for a single trip.
type FareQuote struct {
	Pickup         Coordinate `json:"pickup"`
	Dropoff        Coordinate `json:"dropoff"`
	PickupGeohash  string     `json:"pickup_geohash"`
	DropoffGeohash string     `json:"dropoff_geohash"`
	DistanceKm     float64    `json:"distance_km"`
	Hour           int        `json:"hour"`
	Fare           float64    `json:"fare"`
}

// EstimateRequest is the JSON body accepted by the coordinate based estimate endpoint.
type EstimateRequest struct {
	Pickup  *CoordinateInput `json:"pickup" binding:"required"`
	Dropoff *CoordinateInput `json:"dropoff" binding:"required"`
	Hour    *int             `json:"hour" binding:"required,min=0,max=23"`
}
