package wallet

import (
	"context"
	"errors"

	"github.com/piresc/ridepay/internal/pkg/models"
)

var (
	ErrNotFound           = errors.New("wallet not found")
	ErrDuplicateReference = errors.New("duplicate transaction reference")
)

// LedgerTx is the locked view of the wallets passed to WalletRepo.Mutate
type LedgerTx interface {
	// Wallet returns the locked wallet, or nil when id was not requested
	Wallet(id string) *models.Wallet
	HasReference(walletID, referenceID string, category models.TransactionCategory, typ models.TransactionType) (bool, error)
}

// MutateFunc changes the locked wallets in place and returns the
// transactions to append
type MutateFunc func(tx LedgerTx) ([]*models.Transaction, error)

// WalletRepo defines the interface for wallet data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridepay/services/wallet WalletRepo
type WalletRepo interface {
	// GetOrCreateByAccount returns the account's wallet, inserting w when
	// the account has none yet
	GetOrCreateByAccount(ctx context.Context, w *models.Wallet) (*models.Wallet, error)
	GetByAccount(ctx context.Context, accountID string) (*models.Wallet, error)
	// Mutate serialises all writers of walletIDs, runs fn, then persists the
	// wallets and appends the returned transactions atomically. Nothing is
	// written when fn or any write fails.
	Mutate(ctx context.Context, walletIDs []string, fn MutateFunc) error
	ListTransactions(ctx context.Context, walletID string, filter models.TransactionFilter) ([]*models.Transaction, error)
}
