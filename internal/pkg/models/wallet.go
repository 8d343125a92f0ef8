package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the per-account balance with its spending counters
type Wallet struct {
	ID           string          `json:"id" db:"id"`
	AccountID    string          `json:"account_id" db:"account_id"`
	Balance      decimal.Decimal `json:"balance" db:"balance"`
	Currency     string          `json:"currency" db:"currency"`
	IsActive     bool            `json:"is_active" db:"is_active"`
	DailySpent   decimal.Decimal `json:"daily_spent" db:"daily_spent"`
	MonthlySpent decimal.Decimal `json:"monthly_spent" db:"monthly_spent"`
	DailyLimit   decimal.Decimal `json:"daily_limit" db:"daily_limit"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" db:"monthly_limit"`
	LastResetAt  time.Time       `json:"last_reset_at" db:"last_reset_at"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// ResetLimits zeroes the spend counters when the calendar day or month of now
// differs from the last reset, and reports whether anything changed.
func (w *Wallet) ResetLimits(now time.Time) bool {
	changed := false
	if !SameDay(w.LastResetAt, now) {
		w.DailySpent = decimal.Zero
		changed = true
	}
	if !SameMonth(w.LastResetAt, now) {
		w.MonthlySpent = decimal.Zero
		changed = true
	}
	if changed {
		w.LastResetAt = now
	}
	return changed
}

// Snapshot returns the caller-facing view of the wallet
func (w *Wallet) Snapshot() WalletSnapshot {
	return WalletSnapshot{
		WalletID:     w.ID,
		AccountID:    w.AccountID,
		Balance:      w.Balance,
		Currency:     w.Currency,
		IsActive:     w.IsActive,
		DailySpent:   w.DailySpent,
		MonthlySpent: w.MonthlySpent,
		DailyLimit:   w.DailyLimit,
		MonthlyLimit: w.MonthlyLimit,
	}
}

// WalletSnapshot is what GetWallet returns
type WalletSnapshot struct {
	WalletID     string          `json:"wallet_id"`
	AccountID    string          `json:"account_id"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	IsActive     bool            `json:"is_active"`
	DailySpent   decimal.Decimal `json:"daily_spent"`
	MonthlySpent decimal.Decimal `json:"monthly_spent"`
	DailyLimit   decimal.Decimal `json:"daily_limit"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

// TopupRequest credits a wallet from an external payment
type TopupRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Confirmation string          `json:"confirmation"`
}

// WithdrawRequest moves funds out to an external destination
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination"`
}

// TransferRequest moves funds between two accounts
type TransferRequest struct {
	ToAccountID string          `json:"to_account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TransferResult is returned after a successful transfer
type TransferResult struct {
	ReferenceID string       `json:"reference_id"`
	Debit       *Transaction `json:"debit"`
	Credit      *Transaction `json:"credit"`
}

// LedgerEntry describes a single credit or debit to apply to a wallet
type LedgerEntry struct {
	Amount      decimal.Decimal     `json:"amount"`
	Category    TransactionCategory `json:"category"`
	Description string              `json:"description"`
	ReferenceID string              `json:"reference_id,omitempty"`
	Metadata    string              `json:"metadata,omitempty"`
}

// RideSettlement moves the fare of a completed trip between the requester
// and the driver. For cash trips only the platform fee is debited from the
// driver.
type RideSettlement struct {
	TripID      string
	RequesterID string
	DriverID    string
	Method      PaymentMethod
	Total       decimal.Decimal
	DriverShare decimal.Decimal
	PlatformFee decimal.Decimal
}
