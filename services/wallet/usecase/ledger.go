package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// normalizeAmount rounds to cents and rejects non-positive amounts
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = models.RoundMoney(amount)
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount
	}
	return amount, nil
}

// credit increases the balance of w and returns the matching entry
func credit(w *models.Wallet, now time.Time, e models.LedgerEntry, status models.TransactionStatus) (*models.Transaction, error) {
	if !w.IsActive {
		return nil, apperror.ErrWalletInactive
	}

	before := w.Balance
	w.Balance = models.RoundMoney(w.Balance.Add(e.Amount))
	w.UpdatedAt = now
	return newTransaction(w, now, models.TransactionCredit, e, before, status), nil
}

// debit decreases the balance of w after resetting its counters for the
// current day and month. On error w may have been reset but is otherwise
// unchanged.
func debit(w *models.Wallet, now time.Time, e models.LedgerEntry, status models.TransactionStatus) (*models.Transaction, error) {
	if !w.IsActive {
		return nil, apperror.ErrWalletInactive
	}
	w.ResetLimits(now)

	if w.Balance.LessThan(e.Amount) {
		return nil, apperror.ErrInsufficientFunds.WithMessage(
			"insufficient funds: balance %s, required %s", w.Balance.StringFixed(2), e.Amount.StringFixed(2))
	}
	if w.DailySpent.Add(e.Amount).GreaterThan(w.DailyLimit) {
		return nil, apperror.ErrDailyLimitExceeded.WithMessage(
			"daily spending limit %s exceeded", w.DailyLimit.StringFixed(2))
	}
	if w.MonthlySpent.Add(e.Amount).GreaterThan(w.MonthlyLimit) {
		return nil, apperror.ErrMonthlyLimitExceeded.WithMessage(
			"monthly spending limit %s exceeded", w.MonthlyLimit.StringFixed(2))
	}

	before := w.Balance
	w.Balance = models.RoundMoney(w.Balance.Sub(e.Amount))
	w.DailySpent = models.RoundMoney(w.DailySpent.Add(e.Amount))
	w.MonthlySpent = models.RoundMoney(w.MonthlySpent.Add(e.Amount))
	w.UpdatedAt = now
	return newTransaction(w, now, models.TransactionDebit, e, before, status), nil
}

func newTransaction(w *models.Wallet, now time.Time, typ models.TransactionType, e models.LedgerEntry, before decimal.Decimal, status models.TransactionStatus) *models.Transaction {
	txn := &models.Transaction{
		ID:            uuid.New().String(),
		WalletID:      w.ID,
		Type:          typ,
		Amount:        e.Amount,
		Category:      e.Category,
		Status:        status,
		Description:   e.Description,
		ReferenceID:   e.ReferenceID,
		BalanceBefore: before,
		BalanceAfter:  w.Balance,
		Metadata:      e.Metadata,
		CreatedAt:     now,
	}
	if status == models.TransactionCompleted {
		completed := now
		txn.CompletedAt = &completed
	}
	return txn
}
