package models

import "errors"

// ErrInvalidLocation is returned for coordinates outside the valid range
var ErrInvalidLocation = errors.New("invalid location coordinates")

// Location represents a geographical point with an optional address
type Location struct {
	Longitude float64 `json:"longitude" db:"longitude"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// Validate checks that the coordinates are within range
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
		return ErrInvalidLocation
	}
	return nil
}
