package usecase

import (
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/fare"
	"github.com/piresc/ridepay/services/fare/route"
	"github.com/piresc/ridepay/services/rides"
	"github.com/piresc/ridepay/services/wallet"
	"github.com/shopspring/decimal"
)

const (
	defaultSearchRadiusKm  = 5.0
	defaultMaxCandidates   = 10
	defaultPlatformFeeRate = 0.15

	// candidates fetched from the locator per requested slot, since some are
	// dropped when re-validated against the driver repository
	candidateOverfetch = 3

	maxUpdateAttempts = 3
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg        *models.Config
	tripRepo   rides.TripRepo
	driverRepo rides.DriverRepo
	locator    rides.DriverLocator
	rideGW     rides.RideGW
	walletUC   wallet.WalletUC
	router     route.Estimator
	rates      fare.Rates
	now        func() time.Time

	searchRadiusKm  float64
	maxCandidates   int
	surge           decimal.Decimal
	platformFeeRate decimal.Decimal
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	tripRepo rides.TripRepo,
	driverRepo rides.DriverRepo,
	locator rides.DriverLocator,
	rideGW rides.RideGW,
	walletUC wallet.WalletUC,
	router route.Estimator,
) rides.RideUC {
	uc := &rideUC{
		cfg:             cfg,
		tripRepo:        tripRepo,
		driverRepo:      driverRepo,
		locator:         locator,
		rideGW:          rideGW,
		walletUC:        walletUC,
		router:          router,
		rates:           fare.RatesFromConfig(cfg.Pricing),
		now:             models.Now,
		searchRadiusKm:  cfg.Dispatch.SearchRadiusKm,
		maxCandidates:   cfg.Dispatch.MaxCandidates,
		surge:           decimal.NewFromFloat(cfg.Pricing.SurgeFactor),
		platformFeeRate: decimal.NewFromFloat(cfg.Rides.PlatformFeeRate),
	}
	if uc.router == nil {
		uc.router = route.NewHaversine(route.DefaultRoadFactor, route.DefaultAvgSpeedKmh)
	}
	if uc.searchRadiusKm <= 0 {
		uc.searchRadiusKm = defaultSearchRadiusKm
	}
	if uc.maxCandidates <= 0 {
		uc.maxCandidates = defaultMaxCandidates
	}
	if uc.surge.LessThan(decimal.NewFromInt(1)) {
		uc.surge = decimal.NewFromInt(1)
	}
	if uc.platformFeeRate.IsNegative() || uc.platformFeeRate.GreaterThan(decimal.NewFromInt(1)) || cfg.Rides.PlatformFeeRate == 0 {
		uc.platformFeeRate = decimal.NewFromFloat(defaultPlatformFeeRate)
	}
	return uc
}
