package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/ridepay/internal/pkg/database"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides"
)

const (
	tripColumns = `id, requester_id, driver_id, status, vehicle_class,
		pickup_latitude, pickup_longitude, pickup_address,
		dropoff_latitude, dropoff_longitude, dropoff_address,
		estimated_distance_km, estimated_duration_min, actual_distance_km, actual_duration_min,
		fare_base, fare_distance, fare_duration, fare_surge, fare_subtotal, fare_discount,
		fare_tax, fare_tip, fare_total, currency, payment_method, payment_status,
		requested_at, accepted_at, arrived_at, started_at, completed_at, cancelled_at,
		cancelled_by, cancel_reason, passenger_rating, passenger_comment,
		driver_rating, driver_comment, version, updated_at`

	insertTripQuery = `
		INSERT INTO trips (` + tripColumns + `)
		VALUES (:id, :requester_id, :driver_id, :status, :vehicle_class,
			:pickup_latitude, :pickup_longitude, :pickup_address,
			:dropoff_latitude, :dropoff_longitude, :dropoff_address,
			:estimated_distance_km, :estimated_duration_min, :actual_distance_km, :actual_duration_min,
			:fare_base, :fare_distance, :fare_duration, :fare_surge, :fare_subtotal, :fare_discount,
			:fare_tax, :fare_tip, :fare_total, :currency, :payment_method, :payment_status,
			:requested_at, :accepted_at, :arrived_at, :started_at, :completed_at, :cancelled_at,
			:cancelled_by, :cancel_reason, :passenger_rating, :passenger_comment,
			:driver_rating, :driver_comment, :version, :updated_at)`

	selectTripQuery = `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	selectActiveTripByRequesterQuery = `SELECT ` + tripColumns + ` FROM trips
		WHERE requester_id = $1 AND status = ANY($2) LIMIT 1`

	acceptTripQuery = `
		UPDATE trips
		SET driver_id = $2, status = 'ACCEPTED', accepted_at = $3, updated_at = $3, version = version + 1
		WHERE id = $1 AND status = 'REQUESTED'
			AND NOT EXISTS (SELECT 1 FROM trips active WHERE active.driver_id = $2 AND active.status = ANY($4))
		RETURNING ` + tripColumns

	selectTripStatusQuery = `SELECT status FROM trips WHERE id = $1`

	updateTripQuery = `
		UPDATE trips
		SET driver_id = :driver_id, status = :status,
			actual_distance_km = :actual_distance_km, actual_duration_min = :actual_duration_min,
			payment_status = :payment_status, accepted_at = :accepted_at, arrived_at = :arrived_at,
			started_at = :started_at, completed_at = :completed_at, cancelled_at = :cancelled_at,
			cancelled_by = :cancelled_by, cancel_reason = :cancel_reason,
			passenger_rating = :passenger_rating, passenger_comment = :passenger_comment,
			driver_rating = :driver_rating, driver_comment = :driver_comment,
			version = version + 1, updated_at = :updated_at
		WHERE id = :id AND status = :from_status AND version = :from_version`

	driverColumns = `id, approval_status, availability, latitude, longitude, address,
		vehicle_class, total_trips, total_earnings, updated_at`

	saveDriverQuery = `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES (:id, :approval_status, :availability, :latitude, :longitude, :address,
			:vehicle_class, :total_trips, :total_earnings, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			approval_status = EXCLUDED.approval_status,
			vehicle_class = EXCLUDED.vehicle_class,
			availability = CASE
				WHEN EXCLUDED.approval_status <> 'APPROVED' AND drivers.availability = 'ONLINE' THEN 'OFFLINE'
				ELSE drivers.availability END,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + driverColumns

	selectDriverQuery = `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	selectDriversQuery = `SELECT ` + driverColumns + ` FROM drivers WHERE id = ANY($1)`

	updateDriverLocationQuery = `
		UPDATE drivers SET latitude = $2, longitude = $3, address = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + driverColumns

	setDriverAvailabilityQuery = `
		UPDATE drivers SET availability = $2, updated_at = $3
		WHERE id = $1 AND availability <> 'BUSY'
		RETURNING ` + driverColumns

	markDriverBusyQuery = `UPDATE drivers SET availability = 'BUSY', updated_at = $2 WHERE id = $1`

	releaseDriverQuery = `
		UPDATE drivers
		SET availability = $2, total_trips = total_trips + $3, total_earnings = total_earnings + $4, updated_at = $5
		WHERE id = $1`

	activeRequesterIndex = "trips_active_requester_idx"
	activeDriverIndex    = "trips_active_driver_idx"
)

// PostgresRepo stores trips and drivers in Postgres
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a trip and driver repository on db
func NewPostgresRepository(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

type transitionRow struct {
	tripRow
	FromStatus  string `db:"from_status"`
	FromVersion int64  `db:"from_version"`
}

func (r *PostgresRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if _, err := r.db.NamedExecContext(ctx, insertTripQuery, newTripRow(trip)); err != nil {
		if database.IsUniqueViolation(err, activeRequesterIndex) {
			return rides.ErrDuplicate
		}
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var row tripRow
	err := r.db.GetContext(ctx, &row, selectTripQuery, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return row.toModel(), nil
}

func (r *PostgresRepo) GetActiveTripByRequester(ctx context.Context, requesterID string) (*models.Trip, error) {
	var row tripRow
	err := r.db.GetContext(ctx, &row, selectActiveTripByRequesterQuery, requesterID, pq.Array(models.ActiveTripStatusStrings()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active trip: %w", err)
	}
	return row.toModel(), nil
}

func (r *PostgresRepo) AcceptTrip(ctx context.Context, tripID, driverID string, acceptedAt time.Time) (*models.Trip, error) {
	var accepted *models.Trip
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row tripRow
		err := tx.GetContext(ctx, &row, acceptTripQuery, tripID, driverID, acceptedAt, pq.Array(models.ActiveTripStatusStrings()))
		if errors.Is(err, sql.ErrNoRows) {
			return r.diagnoseAccept(ctx, tx, tripID)
		}
		if err != nil {
			if database.IsUniqueViolation(err, activeDriverIndex) {
				return rides.ErrDriverBusy
			}
			return fmt.Errorf("failed to accept trip: %w", err)
		}

		if _, err := tx.ExecContext(ctx, markDriverBusyQuery, driverID, acceptedAt); err != nil {
			return fmt.Errorf("failed to mark driver busy: %w", err)
		}
		accepted = row.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// diagnoseAccept explains why the conditional accept matched no row
func (r *PostgresRepo) diagnoseAccept(ctx context.Context, tx *sqlx.Tx, tripID string) error {
	var status string
	err := tx.GetContext(ctx, &status, selectTripStatusQuery, tripID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return rides.ErrNotFound
	case err != nil:
		return fmt.Errorf("failed to read trip status: %w", err)
	case status != string(models.TripStatusRequested):
		return rides.ErrPreconditionFailed
	default:
		return rides.ErrDriverBusy
	}
}

func (r *PostgresRepo) UpdateTrip(ctx context.Context, tr models.TripTransition) (*models.Trip, error) {
	updated := tr.Trip.Clone()
	updated.Version = tr.FromVersion + 1

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, updateTripQuery, transitionRow{
			tripRow:     newTripRow(tr.Trip),
			FromStatus:  string(tr.FromStatus),
			FromVersion: tr.FromVersion,
		})
		if err != nil {
			return fmt.Errorf("failed to update trip: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update trip: %w", err)
		}
		if n == 0 {
			return rides.ErrPreconditionFailed
		}

		if tr.DriverAvailability == "" || updated.DriverID == "" {
			return nil
		}
		earnings := models.DriverEarnings{}
		if tr.DriverEarnings != nil {
			earnings = *tr.DriverEarnings
		}
		if _, err := tx.ExecContext(ctx, releaseDriverQuery,
			updated.DriverID, string(tr.DriverAvailability), earnings.Trips, earnings.Amount, updated.UpdatedAt); err != nil {
			return fmt.Errorf("failed to update driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *PostgresRepo) SaveDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	query, args, err := r.db.BindNamed(saveDriverQuery, newDriverRow(driver))
	if err != nil {
		return nil, fmt.Errorf("failed to bind driver: %w", err)
	}
	var row driverRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, fmt.Errorf("failed to save driver: %w", err)
	}
	return row.toModel(), nil
}

func (r *PostgresRepo) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	var row driverRow
	err := r.db.GetContext(ctx, &row, selectDriverQuery, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return row.toModel(), nil
}

func (r *PostgresRepo) GetDrivers(ctx context.Context, driverIDs []string) ([]*models.Driver, error) {
	if len(driverIDs) == 0 {
		return []*models.Driver{}, nil
	}
	var rows []driverRow
	if err := r.db.SelectContext(ctx, &rows, selectDriversQuery, pq.Array(driverIDs)); err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}
	drivers := make([]*models.Driver, len(rows))
	for i, row := range rows {
		drivers[i] = row.toModel()
	}
	return drivers, nil
}

func (r *PostgresRepo) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, now time.Time) (*models.Driver, error) {
	var row driverRow
	err := r.db.GetContext(ctx, &row, updateDriverLocationQuery,
		driverID, location.Latitude, location.Longitude, location.Address, now)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update driver location: %w", err)
	}
	return row.toModel(), nil
}

func (r *PostgresRepo) SetDriverAvailability(ctx context.Context, driverID string, availability models.DriverAvailability, now time.Time) (*models.Driver, error) {
	var row driverRow
	err := r.db.GetContext(ctx, &row, setDriverAvailabilityQuery, driverID, string(availability), now)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetDriver(ctx, driverID); getErr != nil {
			return nil, getErr
		}
		return nil, rides.ErrDriverBusy
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set driver availability: %w", err)
	}
	return row.toModel(), nil
}
