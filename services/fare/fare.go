package fare

import (
	"math"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// Rates are the pricing constants a fare is computed from
type Rates struct {
	BaseFare  decimal.Decimal
	PerKm     map[models.VehicleClass]decimal.Decimal
	PerMinute decimal.Decimal
	TaxRate   decimal.Decimal
	Currency  string
}

// Input describes one fare to compute
type Input struct {
	DistanceKm   float64
	DurationMin  float64
	VehicleClass models.VehicleClass
	// SurgeMultiplier scales the pre-tax subtotal; zero means no surge
	SurgeMultiplier decimal.Decimal
	Discount        decimal.Decimal
	Tip             decimal.Decimal
}

// DefaultRates returns the standard price list
func DefaultRates() Rates {
	return Rates{
		BaseFare: models.Money(2.50),
		PerKm: map[models.VehicleClass]decimal.Decimal{
			models.VehicleClassEconomy: models.Money(1.20),
			models.VehicleClassComfort: models.Money(1.60),
			models.VehicleClassPremium: models.Money(2.20),
			models.VehicleClassXL:      models.Money(1.80),
		},
		PerMinute: models.Money(0.25),
		TaxRate:   decimal.NewFromFloat(0.08),
		Currency:  "USD",
	}
}

// RatesFromConfig builds rates from the pricing configuration. Unset or
// non-positive values keep their default.
func RatesFromConfig(cfg models.PricingConfig) Rates {
	rates := DefaultRates()
	if cfg.BaseFare > 0 {
		rates.BaseFare = models.Money(cfg.BaseFare)
	}
	for class, perKm := range cfg.PerKmRates {
		if perKm > 0 {
			rates.PerKm[models.VehicleClass(class)] = models.Money(perKm)
		}
	}
	if cfg.PerMinuteRate > 0 {
		rates.PerMinute = models.Money(cfg.PerMinuteRate)
	}
	if cfg.TaxRate > 0 {
		rates.TaxRate = decimal.NewFromFloat(cfg.TaxRate)
	}
	if cfg.Currency != "" {
		rates.Currency = cfg.Currency
	}
	return rates
}

// Calculate computes the fare breakdown of in with the default rates
func Calculate(in Input) (*models.FareBreakdown, error) {
	return DefaultRates().Calculate(in)
}

// Calculate computes the fare breakdown of in. The total is computed from the
// unrounded terms and rounded to cents half-up once:
//
//	subtotal = (base + distance*perKm + duration*perMinute) * surge
//	tax      = (subtotal - discount) * taxRate
//	total    = subtotal - discount + tax + tip
//
// The itemised components are rounded to cents for display only.
func (r Rates) Calculate(in Input) (*models.FareBreakdown, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	perKm, ok := r.PerKm[in.VehicleClass]
	if !ok {
		return nil, apperror.Validation("unknown vehicle class %q", in.VehicleClass)
	}

	surge := in.SurgeMultiplier
	if surge.IsZero() {
		surge = decimal.NewFromInt(1)
	}

	distanceFare := decimal.NewFromFloat(in.DistanceKm).Mul(perKm)
	durationFare := decimal.NewFromFloat(in.DurationMin).Mul(r.PerMinute)
	subtotal := r.BaseFare.Add(distanceFare).Add(durationFare).Mul(surge)

	if in.Discount.GreaterThan(subtotal) {
		return nil, apperror.Validation("discount %s exceeds subtotal %s", in.Discount.StringFixed(2), subtotal.StringFixed(2))
	}
	taxable := subtotal.Sub(in.Discount)
	tax := taxable.Mul(r.TaxRate)

	return &models.FareBreakdown{
		BaseFare:        models.RoundMoney(r.BaseFare),
		DistanceFare:    models.RoundMoney(distanceFare),
		DurationFare:    models.RoundMoney(durationFare),
		SurgeMultiplier: surge,
		Subtotal:        models.RoundMoney(subtotal),
		Discount:        models.RoundMoney(in.Discount),
		Tax:             models.RoundMoney(tax),
		Tip:             models.RoundMoney(in.Tip),
		Total:           models.RoundMoney(taxable.Add(tax).Add(in.Tip)),
		Currency:        r.Currency,
		DistanceKm:      in.DistanceKm,
		DurationMin:     in.DurationMin,
	}, nil
}

func (in Input) validate() error {
	if invalidFloat(in.DistanceKm) {
		return apperror.Validation("distance must be a non-negative number")
	}
	if invalidFloat(in.DurationMin) {
		return apperror.Validation("duration must be a non-negative number")
	}
	if !in.SurgeMultiplier.IsZero() && in.SurgeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return apperror.Validation("surge multiplier must be at least 1")
	}
	if in.Discount.IsNegative() {
		return apperror.Validation("discount must not be negative")
	}
	if in.Tip.IsNegative() {
		return apperror.Validation("tip must not be negative")
	}
	return nil
}

func invalidFloat(f float64) bool {
	return f < 0 || math.IsNaN(f) || math.IsInf(f, 0)
}
