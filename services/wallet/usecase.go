package wallet

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletUC defines the ledger operations on per-account wallets. Wallets are
// addressed by account id and created lazily on first access.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridepay/services/wallet WalletUC
type WalletUC interface {
	GetWallet(ctx context.Context, accountID string) (*models.WalletSnapshot, error)
	TopupWallet(ctx context.Context, accountID string, amount decimal.Decimal, confirmation string) (*models.Transaction, error)
	WithdrawFromWallet(ctx context.Context, accountID string, amount decimal.Decimal, destination string) (*models.Transaction, error)
	TransferWallet(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) (*models.TransferResult, error)
	Credit(ctx context.Context, accountID string, entry models.LedgerEntry) (*models.Transaction, error)
	Debit(ctx context.Context, accountID string, entry models.LedgerEntry) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID string, filter models.TransactionFilter) ([]*models.Transaction, error)

	// SettleRide applies the ledger legs of a completed trip. Legs already
	// recorded for the trip are skipped, so replays return no transactions.
	SettleRide(ctx context.Context, settlement models.RideSettlement) ([]*models.Transaction, error)
	// RefundRide credits the requester once per trip
	RefundRide(ctx context.Context, tripID, accountID string, amount decimal.Decimal, reason string) (*models.Transaction, error)
}
