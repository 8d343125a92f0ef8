package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWallet(t *testing.T, repo *MemoryRepo, id, accountID string, balance int64) {
	t.Helper()
	_, err := repo.GetOrCreateByAccount(context.Background(), &models.Wallet{
		ID: id, AccountID: accountID, Balance: decimal.NewFromInt(balance), IsActive: true,
	})
	require.NoError(t, err)
}

func TestMemoryRepo_GetOrCreateReturnsExisting(t *testing.T) {
	repo := NewMemoryRepository()
	seedWallet(t, repo, "w-1", "rider-1", 10)

	w, err := repo.GetOrCreateByAccount(context.Background(), &models.Wallet{ID: "w-other", AccountID: "rider-1"})
	require.NoError(t, err)
	assert.Equal(t, "w-1", w.ID)

	w.Balance = decimal.NewFromInt(999)
	stored, err := repo.GetByAccount(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(stored.Balance))

	_, err = repo.GetByAccount(context.Background(), "ghost")
	assert.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestMemoryRepo_MutateDiscardsOnError(t *testing.T) {
	repo := NewMemoryRepository()
	seedWallet(t, repo, "w-1", "rider-1", 10)

	err := repo.Mutate(context.Background(), []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		tx.Wallet("w-1").Balance = decimal.Zero
		return nil, errors.New("rejected")
	})
	require.Error(t, err)

	stored, _ := repo.GetByAccount(context.Background(), "rider-1")
	assert.True(t, decimal.NewFromInt(10).Equal(stored.Balance))
}

func TestMemoryRepo_MutateRejectsDuplicateReference(t *testing.T) {
	repo := NewMemoryRepository()
	seedWallet(t, repo, "w-1", "rider-1", 10)
	ctx := context.Background()

	entry := func() *models.Transaction {
		return &models.Transaction{ID: "t", WalletID: "w-1", Type: models.TransactionCredit, Category: models.CategoryTopup, ReferenceID: "pay-1"}
	}

	require.NoError(t, repo.Mutate(ctx, []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		return []*models.Transaction{entry()}, nil
	}))

	err := repo.Mutate(ctx, []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		tx.Wallet("w-1").Balance = decimal.NewFromInt(20)
		return []*models.Transaction{entry()}, nil
	})
	assert.ErrorIs(t, err, wallet.ErrDuplicateReference)

	stored, _ := repo.GetByAccount(ctx, "rider-1")
	assert.True(t, decimal.NewFromInt(10).Equal(stored.Balance))

	exists, err := (&memoryTx{repo: repo}).HasReference("w-1", "pay-1", models.CategoryTopup, models.TransactionCredit)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryRepo_MutateUnknownWallet(t *testing.T) {
	repo := NewMemoryRepository()
	err := repo.Mutate(context.Background(), []string{"w-missing"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestMemoryRepo_MutateHonoursContext(t *testing.T) {
	repo := NewMemoryRepository()
	seedWallet(t, repo, "w-1", "rider-1", 10)

	hold := make(chan struct{})
	released := make(chan struct{})
	go func() {
		_ = repo.Mutate(context.Background(), []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
			close(hold)
			<-released
			return nil, nil
		})
	}()
	<-hold

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := repo.Mutate(ctx, []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(released)
}

func TestMemoryRepo_ListTransactionsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	seedWallet(t, repo, "w-1", "rider-1", 0)
	ctx := context.Background()

	for _, id := range []string{"t-1", "t-2", "t-3"} {
		id := id
		require.NoError(t, repo.Mutate(ctx, []string{"w-1"}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
			return []*models.Transaction{{ID: id, WalletID: "w-1"}}, nil
		}))
	}

	txns, err := repo.ListTransactions(ctx, "w-1", models.TransactionFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "t-2", txns[0].ID)
	assert.Equal(t, "t-1", txns[1].ID)
}
