package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet/mocks"
	"github.com/piresc/ridepay/services/wallet/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestUC(t *testing.T, cfg models.WalletConfig) (*walletUC, *repository.MemoryRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockWalletGW(ctrl)
	gw.EXPECT().PublishWalletEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := repository.NewMemoryRepository()
	uc := NewWalletUC(&models.Config{Wallet: cfg}, repo, gw).(*walletUC)
	return uc, repo
}

func fund(t *testing.T, uc *walletUC, accountID, amount string) {
	t.Helper()
	_, err := uc.TopupWallet(context.Background(), accountID, dec(amount), fmt.Sprintf("conf-%s-%d", accountID, rand.Int63()))
	require.NoError(t, err)
}

func assertLedgerInvariant(t *testing.T, repo *repository.MemoryRepo, accountID string) {
	t.Helper()
	ctx := context.Background()
	w, err := repo.GetByAccount(ctx, accountID)
	require.NoError(t, err)
	txns, err := repo.ListTransactions(ctx, w.ID, models.TransactionFilter{Limit: 10000})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, txn := range txns {
		if !txn.Settled() {
			continue
		}
		if txn.Type == models.TransactionCredit {
			sum = sum.Add(txn.Amount)
		} else {
			sum = sum.Sub(txn.Amount)
		}
	}
	assert.True(t, sum.Equal(w.Balance), "account %s: ledger sum %s, balance %s", accountID, sum, w.Balance)
	assert.False(t, w.Balance.IsNegative(), "account %s has negative balance", accountID)
}

func TestGetWallet_CreatesLazily(t *testing.T) {
	uc, _ := newTestUC(t, models.WalletConfig{})

	snap, err := uc.GetWallet(context.Background(), "rider-1")
	require.NoError(t, err)

	assert.Equal(t, "rider-1", snap.AccountID)
	assert.True(t, snap.IsActive)
	assert.True(t, snap.Balance.IsZero())
	assert.Equal(t, "USD", snap.Currency)
	assert.True(t, dec("500").Equal(snap.DailyLimit))
	assert.True(t, dec("5000").Equal(snap.MonthlyLimit))

	again, err := uc.GetWallet(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Equal(t, snap.WalletID, again.WalletID)
}

func TestDebit_RidePaymentScenario(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{DailyLimit: 500, MonthlyLimit: 5000})
	fund(t, uc, "rider-1", "100.00")

	txn, err := uc.Debit(context.Background(), "rider-1", models.LedgerEntry{
		Amount:      dec("30"),
		Category:    models.CategoryRidePayment,
		Description: "ride payment",
		ReferenceID: "trip-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, txn.Status)
	assert.True(t, dec("100").Equal(txn.BalanceBefore))
	assert.True(t, dec("70").Equal(txn.BalanceAfter))
	assert.NotNil(t, txn.CompletedAt)

	snap, err := uc.GetWallet(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "70.00", snap.Balance.StringFixed(2))
	assert.Equal(t, "30.00", snap.DailySpent.StringFixed(2))
	assert.Equal(t, "30.00", snap.MonthlySpent.StringFixed(2))
	assertLedgerInvariant(t, repo, "rider-1")
}

func TestDebit_InsufficientFundsLeavesBalance(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	fund(t, uc, "rider-1", "20")

	_, err := uc.Debit(context.Background(), "rider-1", models.LedgerEntry{Amount: dec("20.01"), Category: models.CategoryRidePayment})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientFunds))
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)

	snap, err := uc.GetWallet(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "20.00", snap.Balance.StringFixed(2))
	assert.True(t, snap.DailySpent.IsZero())
	assertLedgerInvariant(t, repo, "rider-1")
}

func TestDebit_LimitsLeaveCounters(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.WalletConfig
		wantErr error
	}{
		{"daily", models.WalletConfig{DailyLimit: 50, MonthlyLimit: 5000}, apperror.ErrDailyLimitExceeded},
		{"monthly", models.WalletConfig{DailyLimit: 500, MonthlyLimit: 50}, apperror.ErrMonthlyLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUC(t, tt.cfg)
			fund(t, uc, "rider-1", "100")
			ctx := context.Background()

			_, err := uc.Debit(ctx, "rider-1", models.LedgerEntry{Amount: dec("40"), Category: models.CategoryRidePayment})
			require.NoError(t, err)

			_, err = uc.Debit(ctx, "rider-1", models.LedgerEntry{Amount: dec("10.01"), Category: models.CategoryRidePayment})
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindLimitExceeded))
			assert.ErrorIs(t, err, tt.wantErr)

			snap, err := uc.GetWallet(ctx, "rider-1")
			require.NoError(t, err)
			assert.Equal(t, "60.00", snap.Balance.StringFixed(2))
			assert.Equal(t, "40.00", snap.DailySpent.StringFixed(2))
			assert.Equal(t, "40.00", snap.MonthlySpent.StringFixed(2))

			// exactly at the limit is allowed
			_, err = uc.Debit(ctx, "rider-1", models.LedgerEntry{Amount: dec("10"), Category: models.CategoryRidePayment})
			assert.NoError(t, err)
			assertLedgerInvariant(t, repo, "rider-1")
		})
	}
}

func TestDebit_CalendarResets(t *testing.T) {
	uc, _ := newTestUC(t, models.WalletConfig{DailyLimit: 50, MonthlyLimit: 80})
	ctx := context.Background()

	clock := time.Date(2024, time.January, 30, 23, 50, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }
	fund(t, uc, "rider-1", "300")

	debit := func(amount string) error {
		_, err := uc.Debit(ctx, "rider-1", models.LedgerEntry{Amount: dec(amount), Category: models.CategoryRidePayment})
		return err
	}

	require.NoError(t, debit("45"))
	assert.ErrorIs(t, debit("10"), apperror.ErrDailyLimitExceeded)

	// ten minutes later is a new calendar day
	clock = clock.Add(10 * time.Minute)
	snap, err := uc.GetWallet(ctx, "rider-1")
	require.NoError(t, err)
	assert.True(t, snap.DailySpent.IsZero())
	assert.Equal(t, "45.00", snap.MonthlySpent.StringFixed(2))

	require.NoError(t, debit("30"))
	assert.ErrorIs(t, debit("10"), apperror.ErrMonthlyLimitExceeded)

	clock = time.Date(2024, time.February, 1, 0, 0, 1, 0, time.UTC)
	require.NoError(t, debit("45"))

	snap, err = uc.GetWallet(ctx, "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "45.00", snap.DailySpent.StringFixed(2))
	assert.Equal(t, "45.00", snap.MonthlySpent.StringFixed(2))
	assert.Equal(t, "180.00", snap.Balance.StringFixed(2))
}

func TestGetWallet_PersistsCalendarReset(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()

	clock := time.Date(2024, time.March, 31, 22, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }
	fund(t, uc, "rider-1", "100")
	_, err := uc.Debit(ctx, "rider-1", models.LedgerEntry{Amount: dec("40"), Category: models.CategoryRidePayment})
	require.NoError(t, err)

	clock = time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)
	snap, err := uc.GetWallet(ctx, "rider-1")
	require.NoError(t, err)
	assert.True(t, snap.DailySpent.IsZero())
	assert.True(t, snap.MonthlySpent.IsZero())

	stored, err := repo.GetByAccount(ctx, "rider-1")
	require.NoError(t, err)
	assert.True(t, stored.DailySpent.IsZero())
	assert.True(t, stored.MonthlySpent.IsZero())
	assert.True(t, clock.Equal(stored.LastResetAt))
	assert.Equal(t, "60.00", stored.Balance.StringFixed(2))

	txns, err := repo.ListTransactions(ctx, stored.ID, models.TransactionFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestCredit_Validation(t *testing.T) {
	uc, _ := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()

	for _, amount := range []string{"0", "-5", "0.004"} {
		_, err := uc.Credit(ctx, "rider-1", models.LedgerEntry{Amount: dec(amount), Category: models.CategoryBonus})
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount, amount)
	}

	_, err := uc.Credit(ctx, "rider-1", models.LedgerEntry{Amount: dec("1")})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = uc.Credit(ctx, "", models.LedgerEntry{Amount: dec("1"), Category: models.CategoryBonus})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestInactiveWallet(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()
	fund(t, uc, "rider-1", "50")

	now := models.Now()
	_, err := repo.GetOrCreateByAccount(ctx, &models.Wallet{
		ID: "w-frozen", AccountID: "frozen", IsActive: false, Currency: "USD",
		DailyLimit: dec("500"), MonthlyLimit: dec("5000"), LastResetAt: now, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = uc.Credit(ctx, "frozen", models.LedgerEntry{Amount: dec("1"), Category: models.CategoryBonus})
	assert.ErrorIs(t, err, apperror.ErrWalletInactive)

	_, err = uc.TransferWallet(ctx, "rider-1", "frozen", dec("10"), "")
	assert.ErrorIs(t, err, apperror.ErrWalletInactive)

	snap, err := uc.GetWallet(ctx, "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "50.00", snap.Balance.StringFixed(2))
	assert.True(t, snap.DailySpent.IsZero())
	assertLedgerInvariant(t, repo, "rider-1")
}

func TestTopupWallet_DuplicateConfirmation(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()

	txn, err := uc.TopupWallet(ctx, "rider-1", dec("25"), "pay-123")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTopup, txn.Category)
	assert.Equal(t, "pay-123", txn.ReferenceID)

	_, err = uc.TopupWallet(ctx, "rider-1", dec("25"), "pay-123")
	assert.ErrorIs(t, err, apperror.ErrDuplicateReference)

	_, err = uc.TopupWallet(ctx, "rider-1", dec("25"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	snap, err := uc.GetWallet(ctx, "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "25.00", snap.Balance.StringFixed(2))
	assertLedgerInvariant(t, repo, "rider-1")
}

func TestWithdrawFromWallet_Processing(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()
	fund(t, uc, "driver-1", "80")

	txn, err := uc.WithdrawFromWallet(ctx, "driver-1", dec("30"), "bank:123")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionProcessing, txn.Status)
	assert.Equal(t, models.TransactionDebit, txn.Type)
	assert.Equal(t, "bank:123", txn.Metadata)
	assert.Nil(t, txn.CompletedAt)

	snap, err := uc.GetWallet(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "50.00", snap.Balance.StringFixed(2))
	assertLedgerInvariant(t, repo, "driver-1")

	_, err = uc.WithdrawFromWallet(ctx, "driver-1", dec("30"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	_, err = uc.WithdrawFromWallet(ctx, "driver-1", dec("60"), "bank:123")
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)
}

func TestTransferWallet(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()
	fund(t, uc, "alice", "100")

	res, err := uc.TransferWallet(ctx, "alice", "bob", dec("35.5"), "dinner")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ReferenceID)
	assert.Equal(t, res.ReferenceID, res.Debit.ReferenceID)
	assert.Equal(t, res.ReferenceID, res.Credit.ReferenceID)
	assert.Equal(t, models.CategoryTransfer, res.Debit.Category)

	alice, _ := uc.GetWallet(ctx, "alice")
	bob, _ := uc.GetWallet(ctx, "bob")
	assert.Equal(t, "64.50", alice.Balance.StringFixed(2))
	assert.Equal(t, "35.50", bob.Balance.StringFixed(2))
	assert.Equal(t, "35.50", alice.DailySpent.StringFixed(2))

	_, err = uc.TransferWallet(ctx, "alice", "alice", dec("1"), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = uc.TransferWallet(ctx, "bob", "alice", dec("40"), "")
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)

	assertLedgerInvariant(t, repo, "alice")
	assertLedgerInvariant(t, repo, "bob")
}

func TestListTransactions(t *testing.T) {
	uc, _ := newTestUC(t, models.WalletConfig{})
	ctx := context.Background()

	empty, err := uc.ListTransactions(ctx, "nobody", models.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 1; i <= 3; i++ {
		fund(t, uc, "rider-1", fmt.Sprintf("%d", i))
	}

	txns, err := uc.ListTransactions(ctx, "rider-1", models.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "3.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "2.00", txns[1].Amount.StringFixed(2))

	txns, err = uc.ListTransactions(ctx, "rider-1", models.TransactionFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "1.00", txns[0].Amount.StringFixed(2))
}

func TestConcurrentDebits_NeverOverspend(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{})
	fund(t, uc, "rider-1", "30")

	const workers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Debit(context.Background(), "rider-1", models.LedgerEntry{Amount: dec("1"), Category: models.CategoryRidePayment})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, apperror.ErrInsufficientFunds) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, succeeded)
	assert.Equal(t, workers-30, rejected)

	snap, err := uc.GetWallet(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.True(t, snap.Balance.IsZero())
	assert.Equal(t, "30.00", snap.DailySpent.StringFixed(2))
	assertLedgerInvariant(t, repo, "rider-1")
}

func TestConcurrentTransfers_ConserveMoney(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{DailyLimit: 100000, MonthlyLimit: 100000})
	accounts := []string{"a", "b", "c"}
	for _, a := range accounts {
		fund(t, uc, a, "100")
	}

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from := accounts[i%3]
			to := accounts[(i+1+i/3)%3]
			if from == to {
				to = accounts[(i+2)%3]
			}
			_, _ = uc.TransferWallet(context.Background(), from, to, dec("7.25"), "")
		}(i)
	}
	wg.Wait()

	total := decimal.Zero
	for _, a := range accounts {
		snap, err := uc.GetWallet(context.Background(), a)
		require.NoError(t, err)
		total = total.Add(snap.Balance)
		assertLedgerInvariant(t, repo, a)
	}
	assert.Equal(t, "300.00", total.StringFixed(2))
}

func TestLedgerInvariant_RandomOperations(t *testing.T) {
	uc, repo := newTestUC(t, models.WalletConfig{DailyLimit: 200, MonthlyLimit: 1000})
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	accounts := []string{"a", "b", "c"}

	for i := 0; i < 300; i++ {
		acct := accounts[rng.Intn(len(accounts))]
		amount := decimal.New(int64(rng.Intn(5000)+1), -2)
		switch rng.Intn(5) {
		case 0:
			_, _ = uc.Credit(ctx, acct, models.LedgerEntry{Amount: amount, Category: models.CategoryBonus})
		case 1:
			_, _ = uc.Debit(ctx, acct, models.LedgerEntry{Amount: amount, Category: models.CategoryPenalty})
		case 2:
			_, _ = uc.WithdrawFromWallet(ctx, acct, amount, "bank")
		case 3:
			other := accounts[(rng.Intn(2)+1+indexOf(accounts, acct))%3]
			_, _ = uc.TransferWallet(ctx, acct, other, amount, "")
		default:
			_, _ = uc.TopupWallet(ctx, acct, amount, fmt.Sprintf("conf-%d", i))
		}
	}

	for _, a := range accounts {
		assertLedgerInvariant(t, repo, a)
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestStorageErrorsAreInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWalletRepo(ctrl)
	gw := mocks.NewMockWalletGW(ctrl)
	uc := NewWalletUC(&models.Config{}, repo, gw)

	repo.EXPECT().GetOrCreateByAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := uc.GetWallet(context.Background(), "rider-1")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestPublishFailureDoesNotFailTopup(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockWalletGW(ctrl)
	repo := repository.NewMemoryRepository()
	uc := NewWalletUC(&models.Config{}, repo, gw)

	gw.EXPECT().
		PublishWalletEvent(gomock.Any(), models.EventWalletTopup, "pay-1", gomock.Len(1)).
		Return(errors.New("broker down"))

	txn, err := uc.TopupWallet(context.Background(), "rider-1", dec("10"), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, txn.Status)
}
