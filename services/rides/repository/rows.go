package repository

import (
	"database/sql"
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// tripRow is the flat column layout of the trips table
type tripRow struct {
	ID                   string          `db:"id"`
	RequesterID          string          `db:"requester_id"`
	DriverID             sql.NullString  `db:"driver_id"`
	Status               string          `db:"status"`
	VehicleClass         string          `db:"vehicle_class"`
	PickupLatitude       float64         `db:"pickup_latitude"`
	PickupLongitude      float64         `db:"pickup_longitude"`
	PickupAddress        string          `db:"pickup_address"`
	DropoffLatitude      float64         `db:"dropoff_latitude"`
	DropoffLongitude     float64         `db:"dropoff_longitude"`
	DropoffAddress       string          `db:"dropoff_address"`
	EstimatedDistanceKm  float64         `db:"estimated_distance_km"`
	EstimatedDurationMin float64         `db:"estimated_duration_min"`
	ActualDistanceKm     float64         `db:"actual_distance_km"`
	ActualDurationMin    float64         `db:"actual_duration_min"`
	FareBase             decimal.Decimal `db:"fare_base"`
	FareDistance         decimal.Decimal `db:"fare_distance"`
	FareDuration         decimal.Decimal `db:"fare_duration"`
	FareSurge            decimal.Decimal `db:"fare_surge"`
	FareSubtotal         decimal.Decimal `db:"fare_subtotal"`
	FareDiscount         decimal.Decimal `db:"fare_discount"`
	FareTax              decimal.Decimal `db:"fare_tax"`
	FareTip              decimal.Decimal `db:"fare_tip"`
	FareTotal            decimal.Decimal `db:"fare_total"`
	Currency             string          `db:"currency"`
	PaymentMethod        string          `db:"payment_method"`
	PaymentStatus        string          `db:"payment_status"`
	RequestedAt          time.Time       `db:"requested_at"`
	AcceptedAt           sql.NullTime    `db:"accepted_at"`
	ArrivedAt            sql.NullTime    `db:"arrived_at"`
	StartedAt            sql.NullTime    `db:"started_at"`
	CompletedAt          sql.NullTime    `db:"completed_at"`
	CancelledAt          sql.NullTime    `db:"cancelled_at"`
	CancelledBy          string          `db:"cancelled_by"`
	CancelReason         string          `db:"cancel_reason"`
	PassengerRating      sql.NullInt32   `db:"passenger_rating"`
	PassengerComment     string          `db:"passenger_comment"`
	DriverRating         sql.NullInt32   `db:"driver_rating"`
	DriverComment        string          `db:"driver_comment"`
	Version              int64           `db:"version"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

func newTripRow(t *models.Trip) tripRow {
	return tripRow{
		ID:                   t.ID,
		RequesterID:          t.RequesterID,
		DriverID:             sql.NullString{String: t.DriverID, Valid: t.DriverID != ""},
		Status:               string(t.Status),
		VehicleClass:         string(t.VehicleClass),
		PickupLatitude:       t.Pickup.Latitude,
		PickupLongitude:      t.Pickup.Longitude,
		PickupAddress:        t.Pickup.Address,
		DropoffLatitude:      t.Dropoff.Latitude,
		DropoffLongitude:     t.Dropoff.Longitude,
		DropoffAddress:       t.Dropoff.Address,
		EstimatedDistanceKm:  t.EstimatedDistanceKm,
		EstimatedDurationMin: t.EstimatedDurationMin,
		ActualDistanceKm:     t.ActualDistanceKm,
		ActualDurationMin:    t.ActualDurationMin,
		FareBase:             t.Fare.BaseFare,
		FareDistance:         t.Fare.DistanceFare,
		FareDuration:         t.Fare.DurationFare,
		FareSurge:            t.Fare.SurgeMultiplier,
		FareSubtotal:         t.Fare.Subtotal,
		FareDiscount:         t.Fare.Discount,
		FareTax:              t.Fare.Tax,
		FareTip:              t.Fare.Tip,
		FareTotal:            t.Fare.Total,
		Currency:             t.Fare.Currency,
		PaymentMethod:        string(t.PaymentMethod),
		PaymentStatus:        string(t.PaymentStatus),
		RequestedAt:          t.RequestedAt,
		AcceptedAt:           nullTime(t.AcceptedAt),
		ArrivedAt:            nullTime(t.ArrivedAt),
		StartedAt:            nullTime(t.StartedAt),
		CompletedAt:          nullTime(t.CompletedAt),
		CancelledAt:          nullTime(t.CancelledAt),
		CancelledBy:          t.CancelledBy,
		CancelReason:         t.CancelReason,
		PassengerRating:      nullInt(t.PassengerRating),
		PassengerComment:     t.PassengerComment,
		DriverRating:         nullInt(t.DriverRating),
		DriverComment:        t.DriverComment,
		Version:              t.Version,
		UpdatedAt:            t.UpdatedAt,
	}
}

func (r tripRow) toModel() *models.Trip {
	return &models.Trip{
		ID:                   r.ID,
		RequesterID:          r.RequesterID,
		DriverID:             r.DriverID.String,
		Status:               models.TripStatus(r.Status),
		VehicleClass:         models.VehicleClass(r.VehicleClass),
		Pickup:               models.Location{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude, Address: r.PickupAddress},
		Dropoff:              models.Location{Latitude: r.DropoffLatitude, Longitude: r.DropoffLongitude, Address: r.DropoffAddress},
		EstimatedDistanceKm:  r.EstimatedDistanceKm,
		EstimatedDurationMin: r.EstimatedDurationMin,
		ActualDistanceKm:     r.ActualDistanceKm,
		ActualDurationMin:    r.ActualDurationMin,
		Fare: models.FareBreakdown{
			BaseFare:        r.FareBase,
			DistanceFare:    r.FareDistance,
			DurationFare:    r.FareDuration,
			SurgeMultiplier: r.FareSurge,
			Subtotal:        r.FareSubtotal,
			Discount:        r.FareDiscount,
			Tax:             r.FareTax,
			Tip:             r.FareTip,
			Total:           r.FareTotal,
			Currency:        r.Currency,
			DistanceKm:      r.EstimatedDistanceKm,
			DurationMin:     r.EstimatedDurationMin,
		},
		PaymentMethod:    models.PaymentMethod(r.PaymentMethod),
		PaymentStatus:    models.PaymentStatus(r.PaymentStatus),
		RequestedAt:      r.RequestedAt,
		AcceptedAt:       timePtr(r.AcceptedAt),
		ArrivedAt:        timePtr(r.ArrivedAt),
		StartedAt:        timePtr(r.StartedAt),
		CompletedAt:      timePtr(r.CompletedAt),
		CancelledAt:      timePtr(r.CancelledAt),
		CancelledBy:      r.CancelledBy,
		CancelReason:     r.CancelReason,
		PassengerRating:  intPtr(r.PassengerRating),
		PassengerComment: r.PassengerComment,
		DriverRating:     intPtr(r.DriverRating),
		DriverComment:    r.DriverComment,
		Version:          r.Version,
		UpdatedAt:        r.UpdatedAt,
	}
}

// driverRow is the flat column layout of the drivers table
type driverRow struct {
	ID             string          `db:"id"`
	ApprovalStatus string          `db:"approval_status"`
	Availability   string          `db:"availability"`
	Latitude       float64         `db:"latitude"`
	Longitude      float64         `db:"longitude"`
	Address        string          `db:"address"`
	VehicleClass   string          `db:"vehicle_class"`
	TotalTrips     int             `db:"total_trips"`
	TotalEarnings  decimal.Decimal `db:"total_earnings"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func newDriverRow(d *models.Driver) driverRow {
	return driverRow{
		ID:             d.ID,
		ApprovalStatus: string(d.ApprovalStatus),
		Availability:   string(d.Availability),
		Latitude:       d.Location.Latitude,
		Longitude:      d.Location.Longitude,
		Address:        d.Location.Address,
		VehicleClass:   string(d.VehicleClass),
		TotalTrips:     d.TotalTrips,
		TotalEarnings:  d.TotalEarnings,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r driverRow) toModel() *models.Driver {
	return &models.Driver{
		ID:             r.ID,
		ApprovalStatus: models.DriverApprovalStatus(r.ApprovalStatus),
		Availability:   models.DriverAvailability(r.Availability),
		Location:       models.Location{Latitude: r.Latitude, Longitude: r.Longitude, Address: r.Address},
		VehicleClass:   models.VehicleClass(r.VehicleClass),
		TotalTrips:     r.TotalTrips,
		TotalEarnings:  r.TotalEarnings,
		UpdatedAt:      r.UpdatedAt,
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullInt(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

func intPtr(i sql.NullInt32) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}
