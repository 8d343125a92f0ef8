package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// TransactionCategory classifies why money moved
type TransactionCategory string

const (
	CategoryRidePayment TransactionCategory = "ride_payment"
	CategoryRideEarning TransactionCategory = "ride_earning"
	CategoryTopup       TransactionCategory = "topup"
	CategoryWithdrawal  TransactionCategory = "withdrawal"
	CategoryRefund      TransactionCategory = "refund"
	CategoryTip         TransactionCategory = "tip"
	CategoryBonus       TransactionCategory = "bonus"
	CategoryPenalty     TransactionCategory = "penalty"
	CategoryTransfer    TransactionCategory = "transfer"
)

// TransactionStatus is the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
)

// Transaction is an immutable entry in a wallet's append-only log
type Transaction struct {
	ID            string              `json:"id" db:"id"`
	WalletID      string              `json:"wallet_id" db:"wallet_id"`
	Type          TransactionType     `json:"type" db:"type"`
	Amount        decimal.Decimal     `json:"amount" db:"amount"`
	Category      TransactionCategory `json:"category" db:"category"`
	Status        TransactionStatus   `json:"status" db:"status"`
	Description   string              `json:"description" db:"description"`
	ReferenceID   string              `json:"reference_id,omitempty" db:"reference_id"`
	BalanceBefore decimal.Decimal     `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal     `json:"balance_after" db:"balance_after"`
	// Metadata carries the external confirmation or withdrawal destination
	Metadata    string     `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// Settled reports whether the entry counts toward the balance
func (t *Transaction) Settled() bool {
	return t.Status == TransactionCompleted || t.Status == TransactionProcessing
}

// TransactionFilter pages through a wallet's history, newest first
type TransactionFilter struct {
	Limit  int
	Offset int
}
