package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriverApprovalStatus is the onboarding state of a driver
type DriverApprovalStatus string

const (
	DriverApprovalPending   DriverApprovalStatus = "PENDING"
	DriverApprovalApproved  DriverApprovalStatus = "APPROVED"
	DriverApprovalRejected  DriverApprovalStatus = "REJECTED"
	DriverApprovalSuspended DriverApprovalStatus = "SUSPENDED"
)

// DriverAvailability is whether a driver can take trips right now
type DriverAvailability string

const (
	DriverOnline  DriverAvailability = "ONLINE"
	DriverOffline DriverAvailability = "OFFLINE"
	DriverBusy    DriverAvailability = "BUSY"
)

// Driver is the subset of driver state dispatch and the trip lifecycle need
type Driver struct {
	ID             string               `json:"id" db:"id"`
	ApprovalStatus DriverApprovalStatus `json:"approval_status" db:"approval_status"`
	Availability   DriverAvailability   `json:"availability" db:"availability"`
	Location       Location             `json:"location"`
	VehicleClass   VehicleClass         `json:"vehicle_class" db:"vehicle_class"`
	TotalTrips     int                  `json:"total_trips" db:"total_trips"`
	TotalEarnings  decimal.Decimal      `json:"total_earnings" db:"total_earnings"`
	UpdatedAt      time.Time            `json:"updated_at" db:"updated_at"`
}

// Dispatchable reports whether the driver can be offered a trip of the given class
func (d *Driver) Dispatchable(class VehicleClass) bool {
	return d.ApprovalStatus == DriverApprovalApproved &&
		d.Availability == DriverOnline &&
		d.VehicleClass == class
}

// DriverEarnings increments a driver's counters when a trip completes
type DriverEarnings struct {
	Trips  int
	Amount decimal.Decimal
}

// NearbyDriver is a candidate returned by a driver locator
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}

// DriverStatusUpdate is a driver going online or offline or moving
type DriverStatusUpdate struct {
	Availability DriverAvailability `json:"availability"`
	Location     *Location          `json:"location,omitempty"`
}
