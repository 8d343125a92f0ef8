package models

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places money is rounded to
const MoneyPlaces = 2

// RoundMoney rounds an amount to cents, half-up for non-negative amounts
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Money builds a rounded decimal from a float, for configuration values and tests
func Money(f float64) decimal.Decimal {
	return RoundMoney(decimal.NewFromFloat(f))
}
