package models

import "github.com/shopspring/decimal"

// VehicleClass is the class of vehicle a trip is requested for
type VehicleClass string

const (
	VehicleClassEconomy VehicleClass = "economy"
	VehicleClassComfort VehicleClass = "comfort"
	VehicleClassPremium VehicleClass = "premium"
	VehicleClassXL      VehicleClass = "xl"
)

// VehicleClasses lists every supported vehicle class
var VehicleClasses = []VehicleClass{
	VehicleClassEconomy,
	VehicleClassComfort,
	VehicleClassPremium,
	VehicleClassXL,
}

// Valid reports whether the class is supported
func (c VehicleClass) Valid() bool {
	for _, v := range VehicleClasses {
		if v == c {
			return true
		}
	}
	return false
}

// FareBreakdown is the itemised fare of a trip
type FareBreakdown struct {
	BaseFare        decimal.Decimal `json:"base_fare"`
	DistanceFare    decimal.Decimal `json:"distance_fare"`
	DurationFare    decimal.Decimal `json:"duration_fare"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Tax             decimal.Decimal `json:"tax"`
	Tip             decimal.Decimal `json:"tip"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	DistanceKm      float64         `json:"distance_km"`
	DurationMin     float64         `json:"duration_min"`
}
