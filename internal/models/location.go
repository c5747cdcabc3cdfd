package models

// Coordinate is a point on the earth in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CoordinateInput is a coordinate read from a request body. Pointers let
// binding tell a missing value from zero.
type CoordinateInput struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// Coordinate returns the bound value. It must only be called after validation.
func (c *CoordinateInput) Coordinate() Coordinate {
	return Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

// Place is a named point stored in the local gazetteer.
type Place struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the place position.
func (p Place) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}
