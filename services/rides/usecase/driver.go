package usecase

import (
	"context"
	"errors"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides"
	"github.com/shopspring/decimal"
)

// RegisterDriver records a driver synced from onboarding. Approval and
// vehicle class are updated for known drivers; counters are kept.
func (uc *rideUC) RegisterDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	if driver.ID == "" {
		return nil, apperror.Validation("driver id is required")
	}
	if !driver.VehicleClass.Valid() {
		return nil, apperror.Validation("unknown vehicle class %q", driver.VehicleClass)
	}
	switch driver.ApprovalStatus {
	case "":
		driver.ApprovalStatus = models.DriverApprovalPending
	case models.DriverApprovalPending, models.DriverApprovalApproved, models.DriverApprovalRejected, models.DriverApprovalSuspended:
	default:
		return nil, apperror.Validation("unknown approval status %q", driver.ApprovalStatus)
	}

	driver.Availability = models.DriverOffline
	driver.TotalTrips = 0
	driver.TotalEarnings = decimal.Zero
	driver.UpdatedAt = uc.now()

	saved, err := uc.driverRepo.SaveDriver(ctx, &driver)
	if err != nil {
		return nil, uc.translate(err)
	}
	if saved.ApprovalStatus != models.DriverApprovalApproved {
		if err := uc.locator.RemoveDriver(ctx, saved.ID, saved.VehicleClass); err != nil {
			logger.WarnCtx(ctx, "Failed to remove driver from locator",
				logger.String("driver_id", saved.ID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Driver registered",
		logger.String("driver_id", saved.ID),
		logger.String("approval_status", string(saved.ApprovalStatus)),
		logger.String("vehicle_class", string(saved.VehicleClass)))
	return saved, nil
}

// UpdateDriverStatus takes a driver online or offline and records its
// position. BUSY is set only by the trip lifecycle.
func (uc *rideUC) UpdateDriverStatus(ctx context.Context, driverID string, update models.DriverStatusUpdate) (*models.Driver, error) {
	if driverID == "" {
		return nil, apperror.Validation("driver id is required")
	}
	if update.Availability != "" && update.Availability != models.DriverOnline && update.Availability != models.DriverOffline {
		return nil, apperror.Validation("availability must be %s or %s", models.DriverOnline, models.DriverOffline)
	}
	if update.Location != nil {
		if err := update.Location.Validate(); err != nil {
			return nil, apperror.Validation("invalid driver location")
		}
	}

	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			return nil, apperror.ErrDriverNotFound
		}
		return nil, uc.translate(err)
	}
	if driver.ApprovalStatus != models.DriverApprovalApproved && update.Availability == models.DriverOnline {
		return nil, apperror.ErrPermissionDenied.WithMessage("driver is not approved")
	}

	now := uc.now()
	if update.Location != nil {
		if driver, err = uc.driverRepo.UpdateDriverLocation(ctx, driverID, *update.Location, now); err != nil {
			return nil, uc.translate(err)
		}
	}
	if update.Availability != "" && update.Availability != driver.Availability {
		driver, err = uc.driverRepo.SetDriverAvailability(ctx, driverID, update.Availability, now)
		if err != nil {
			if errors.Is(err, rides.ErrDriverBusy) {
				return nil, apperror.ErrDriverAlreadyActive.WithMessage("driver is on a trip")
			}
			return nil, uc.translate(err)
		}
	}

	if driver.Availability == models.DriverOffline {
		err = uc.locator.RemoveDriver(ctx, driver.ID, driver.VehicleClass)
	} else {
		err = uc.locator.UpsertDriver(ctx, driver.ID, driver.VehicleClass, driver.Location)
	}
	if err != nil {
		return nil, apperror.External("driver locator update failed", err)
	}

	logger.DebugCtx(ctx, "Driver status updated",
		logger.String("driver_id", driver.ID),
		logger.String("availability", string(driver.Availability)))
	return driver, nil
}
