package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the requester pays for a trip
type PaymentMethod string

const (
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Valid reports whether the payment method is supported
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodWallet || m == PaymentMethodCash
}

// PaymentStatus tracks settlement of a trip fare
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Trip represents one requester-to-driver ride from request to terminal state
type Trip struct {
	ID                   string        `json:"id"`
	RequesterID          string        `json:"requester_id"`
	DriverID             string        `json:"driver_id,omitempty"`
	Status               TripStatus    `json:"status"`
	VehicleClass         VehicleClass  `json:"vehicle_class"`
	Pickup               Location      `json:"pickup"`
	Dropoff              Location      `json:"dropoff"`
	EstimatedDistanceKm  float64       `json:"estimated_distance_km"`
	EstimatedDurationMin float64       `json:"estimated_duration_min"`
	ActualDistanceKm     float64       `json:"actual_distance_km,omitempty"`
	ActualDurationMin    float64       `json:"actual_duration_min,omitempty"`
	Fare                 FareBreakdown `json:"fare"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	PaymentStatus        PaymentStatus `json:"payment_status"`
	RequestedAt          time.Time     `json:"requested_at"`
	AcceptedAt           *time.Time    `json:"accepted_at,omitempty"`
	ArrivedAt            *time.Time    `json:"arrived_at,omitempty"`
	StartedAt            *time.Time    `json:"started_at,omitempty"`
	CompletedAt          *time.Time    `json:"completed_at,omitempty"`
	CancelledAt          *time.Time    `json:"cancelled_at,omitempty"`
	CancelledBy          string        `json:"cancelled_by,omitempty"`
	CancelReason         string        `json:"cancel_reason,omitempty"`
	// PassengerRating is given by the requester about the driver
	PassengerRating  *int   `json:"passenger_rating,omitempty"`
	PassengerComment string `json:"passenger_comment,omitempty"`
	// DriverRating is given by the driver about the requester
	DriverRating  *int      `json:"driver_rating,omitempty"`
	DriverComment string    `json:"driver_comment,omitempty"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the trip
func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	c := *t
	c.AcceptedAt = cloneTime(t.AcceptedAt)
	c.ArrivedAt = cloneTime(t.ArrivedAt)
	c.StartedAt = cloneTime(t.StartedAt)
	c.CompletedAt = cloneTime(t.CompletedAt)
	c.CancelledAt = cloneTime(t.CancelledAt)
	c.PassengerRating = cloneInt(t.PassengerRating)
	c.DriverRating = cloneInt(t.DriverRating)
	return &c
}

// RideRequest is the input of a new ride request
type RideRequest struct {
	RequesterID   string        `json:"-"`
	Pickup        Location      `json:"pickup"`
	Dropoff       Location      `json:"dropoff"`
	VehicleClass  VehicleClass  `json:"vehicle_class"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// TripTransition describes a compare-and-set status change of a trip.
// The write happens only while the stored trip still has FromStatus and FromVersion.
type TripTransition struct {
	TripID      string
	FromStatus  TripStatus
	FromVersion int64
	Trip        *Trip
	// DriverAvailability, when set, is applied to the trip's driver in the same write
	DriverAvailability DriverAvailability
	// DriverEarnings, when set, increments the driver's trip and earnings counters
	DriverEarnings *DriverEarnings
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

// TripStatusRequest moves a trip to the next status
type TripStatusRequest struct {
	Status TripStatus `json:"status"`
}

// CancelTripRequest cancels a trip with an optional reason
type CancelTripRequest struct {
	Reason string `json:"reason"`
}

// RateTripRequest rates the other party of a completed trip
type RateTripRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FareEstimateRequest asks for a quote without creating a trip
type FareEstimateRequest struct {
	Pickup       Location     `json:"pickup"`
	Dropoff      Location     `json:"dropoff"`
	VehicleClass VehicleClass `json:"vehicle_class"`
}

// RefundRequest returns part or all of a settled fare to the requester
type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}
