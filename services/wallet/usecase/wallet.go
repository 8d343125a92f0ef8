package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetWallet returns the account's wallet, creating it on first access, with
// spend counters reset for the current day and month. A reset is saved.
func (uc *walletUC) GetWallet(ctx context.Context, accountID string) (*models.WalletSnapshot, error) {
	w, err := uc.getOrCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if !w.ResetLimits(now) {
		snapshot := w.Snapshot()
		return &snapshot, nil
	}

	// a new day or month started since the last debit; persist the reset
	var snapshot models.WalletSnapshot
	err = uc.walletRepo.Mutate(ctx, []string{w.ID}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		locked := tx.Wallet(w.ID)
		locked.ResetLimits(now)
		snapshot = locked.Snapshot()
		return nil, nil
	})
	if err != nil {
		return nil, uc.translate(err)
	}
	return &snapshot, nil
}

// TopupWallet credits an external payment. The confirmation is the reference
// of the credit, so one confirmation tops up at most once.
func (uc *walletUC) TopupWallet(ctx context.Context, accountID string, amount decimal.Decimal, confirmation string) (*models.Transaction, error) {
	if confirmation == "" {
		return nil, apperror.Validation("payment confirmation is required")
	}
	txn, err := uc.Credit(ctx, accountID, models.LedgerEntry{
		Amount:      amount,
		Category:    models.CategoryTopup,
		Description: "wallet topup",
		ReferenceID: confirmation,
		Metadata:    confirmation,
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.EventWalletTopup, confirmation, txn)
	return txn, nil
}

// WithdrawFromWallet reserves funds for an external payout. The debit is
// recorded as processing until the payout settles.
func (uc *walletUC) WithdrawFromWallet(ctx context.Context, accountID string, amount decimal.Decimal, destination string) (*models.Transaction, error) {
	if destination == "" {
		return nil, apperror.Validation("withdrawal destination is required")
	}
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}

	entry := models.LedgerEntry{
		Amount:      amount,
		Category:    models.CategoryWithdrawal,
		Description: "wallet withdrawal",
		ReferenceID: uuid.New().String(),
		Metadata:    destination,
	}
	txn, err := uc.applyOne(ctx, accountID, func(w *models.Wallet, tx wallet.LedgerTx) (*models.Transaction, error) {
		return debit(w, uc.now(), entry, models.TransactionProcessing)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Withdrawal reserved",
		logger.String("account_id", accountID),
		logger.String("transaction_id", txn.ID),
		logger.String("amount", amount.StringFixed(2)))
	uc.publish(ctx, models.EventWalletWithdrawal, entry.ReferenceID, txn)
	return txn, nil
}

// TransferWallet moves funds between two accounts in one atomic ledger write.
// Both legs share the returned reference id.
func (uc *walletUC) TransferWallet(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) (*models.TransferResult, error) {
	if fromAccountID == toAccountID {
		return nil, apperror.Validation("cannot transfer to the same account")
	}
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, err
	}

	from, err := uc.getOrCreate(ctx, fromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := uc.getOrCreate(ctx, toAccountID)
	if err != nil {
		return nil, err
	}

	result := &models.TransferResult{ReferenceID: uuid.New().String()}
	if description == "" {
		description = "wallet transfer"
	}

	err = uc.walletRepo.Mutate(ctx, []string{from.ID, to.ID}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		now := uc.now()
		d, err := debit(tx.Wallet(from.ID), now, models.LedgerEntry{
			Amount:      amount,
			Category:    models.CategoryTransfer,
			Description: description,
			ReferenceID: result.ReferenceID,
			Metadata:    toAccountID,
		}, models.TransactionCompleted)
		if err != nil {
			return nil, err
		}
		c, err := credit(tx.Wallet(to.ID), now, models.LedgerEntry{
			Amount:      amount,
			Category:    models.CategoryTransfer,
			Description: description,
			ReferenceID: result.ReferenceID,
			Metadata:    fromAccountID,
		}, models.TransactionCompleted)
		if err != nil {
			return nil, err
		}
		result.Debit, result.Credit = d, c
		return []*models.Transaction{d, c}, nil
	})
	if err != nil {
		return nil, uc.translate(err)
	}

	logger.InfoCtx(ctx, "Transfer completed",
		logger.String("reference_id", result.ReferenceID),
		logger.String("from_account_id", fromAccountID),
		logger.String("to_account_id", toAccountID),
		logger.String("amount", amount.StringFixed(2)))
	uc.publish(ctx, models.EventWalletTransfer, result.ReferenceID, result.Debit, result.Credit)
	return result, nil
}

// Credit appends a completed credit
func (uc *walletUC) Credit(ctx context.Context, accountID string, entry models.LedgerEntry) (*models.Transaction, error) {
	entry, err := validEntry(entry)
	if err != nil {
		return nil, err
	}
	return uc.applyOne(ctx, accountID, func(w *models.Wallet, tx wallet.LedgerTx) (*models.Transaction, error) {
		if err := checkReference(tx, w.ID, entry, models.TransactionCredit); err != nil {
			return nil, err
		}
		return credit(w, uc.now(), entry, models.TransactionCompleted)
	})
}

// Debit appends a completed debit after the balance and limit checks
func (uc *walletUC) Debit(ctx context.Context, accountID string, entry models.LedgerEntry) (*models.Transaction, error) {
	entry, err := validEntry(entry)
	if err != nil {
		return nil, err
	}
	return uc.applyOne(ctx, accountID, func(w *models.Wallet, tx wallet.LedgerTx) (*models.Transaction, error) {
		if err := checkReference(tx, w.ID, entry, models.TransactionDebit); err != nil {
			return nil, err
		}
		return debit(w, uc.now(), entry, models.TransactionCompleted)
	})
}

// ListTransactions pages through the account's history, newest first
func (uc *walletUC) ListTransactions(ctx context.Context, accountID string, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if accountID == "" {
		return nil, apperror.Validation("account id is required")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	w, err := uc.walletRepo.GetByAccount(ctx, accountID)
	if errors.Is(err, wallet.ErrNotFound) {
		return []*models.Transaction{}, nil
	}
	if err != nil {
		return nil, uc.translate(err)
	}

	txns, err := uc.walletRepo.ListTransactions(ctx, w.ID, filter)
	if err != nil {
		return nil, uc.translate(err)
	}
	return txns, nil
}

// applyOne runs fn against the locked wallet of accountID and appends the
// transaction it returns
func (uc *walletUC) applyOne(ctx context.Context, accountID string, fn func(w *models.Wallet, tx wallet.LedgerTx) (*models.Transaction, error)) (*models.Transaction, error) {
	w, err := uc.getOrCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var txn *models.Transaction
	err = uc.walletRepo.Mutate(ctx, []string{w.ID}, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		t, err := fn(tx.Wallet(w.ID), tx)
		if err != nil {
			return nil, err
		}
		txn = t
		return []*models.Transaction{t}, nil
	})
	if err != nil {
		return nil, uc.translate(err)
	}
	return txn, nil
}

func (uc *walletUC) getOrCreate(ctx context.Context, accountID string) (*models.Wallet, error) {
	if accountID == "" {
		return nil, apperror.Validation("account id is required")
	}

	now := uc.now()
	w, err := uc.walletRepo.GetOrCreateByAccount(ctx, &models.Wallet{
		ID:           uuid.New().String(),
		AccountID:    accountID,
		Balance:      decimal.Zero,
		Currency:     uc.currency,
		IsActive:     true,
		DailySpent:   decimal.Zero,
		MonthlySpent: decimal.Zero,
		DailyLimit:   uc.dailyLimit,
		MonthlyLimit: uc.monthlyLimit,
		LastResetAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, uc.translate(err)
	}
	return w, nil
}

func (uc *walletUC) publish(ctx context.Context, eventType models.EventType, referenceID string, txns ...*models.Transaction) {
	if err := uc.walletGW.PublishWalletEvent(ctx, eventType, referenceID, txns); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish wallet event",
			logger.String("event", string(eventType)),
			logger.String("reference_id", referenceID),
			logger.Err(err))
	}
}

// translate maps repository errors to application errors
func (uc *walletUC) translate(err error) error {
	var appErr *apperror.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, wallet.ErrNotFound):
		return apperror.ErrWalletNotFound
	case errors.Is(err, wallet.ErrDuplicateReference):
		return apperror.ErrDuplicateReference
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		logger.Error("Wallet storage failure", logger.Err(err))
		return apperror.Internal("wallet storage failure", err)
	}
}

func validEntry(entry models.LedgerEntry) (models.LedgerEntry, error) {
	amount, err := normalizeAmount(entry.Amount)
	if err != nil {
		return entry, err
	}
	if entry.Category == "" {
		return entry, apperror.Validation("transaction category is required")
	}
	entry.Amount = amount
	return entry, nil
}

// checkReference rejects a second entry with the same reference, category
// and direction on one wallet
func checkReference(tx wallet.LedgerTx, walletID string, entry models.LedgerEntry, typ models.TransactionType) error {
	if entry.ReferenceID == "" {
		return nil
	}
	exists, err := tx.HasReference(walletID, entry.ReferenceID, entry.Category, typ)
	if err != nil {
		return fmt.Errorf("failed to check reference: %w", err)
	}
	if exists {
		return apperror.ErrDuplicateReference
	}
	return nil
}
