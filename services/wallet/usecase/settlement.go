package usecase

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
	"github.com/shopspring/decimal"
)

type settlementLeg struct {
	walletID string
	typ      models.TransactionType
	entry    models.LedgerEntry
}

// SettleRide applies every leg of the settlement that is not yet recorded in
// one atomic write over both wallets
func (uc *walletUC) SettleRide(ctx context.Context, s models.RideSettlement) ([]*models.Transaction, error) {
	if s.TripID == "" || s.RequesterID == "" || s.DriverID == "" {
		return nil, apperror.Validation("trip, requester and driver are required for settlement")
	}

	driver, err := uc.getOrCreate(ctx, s.DriverID)
	if err != nil {
		return nil, err
	}

	walletIDs := []string{driver.ID}
	var legs []settlementLeg

	switch s.Method {
	case models.PaymentMethodCash:
		legs = append(legs, settlementLeg{driver.ID, models.TransactionDebit, models.LedgerEntry{
			Amount:      models.RoundMoney(s.PlatformFee),
			Category:    models.CategoryRidePayment,
			Description: "platform fee",
			ReferenceID: s.TripID,
		}})
	default:
		requester, err := uc.getOrCreate(ctx, s.RequesterID)
		if err != nil {
			return nil, err
		}
		walletIDs = append(walletIDs, requester.ID)
		legs = append(legs,
			settlementLeg{requester.ID, models.TransactionDebit, models.LedgerEntry{
				Amount:      models.RoundMoney(s.Total),
				Category:    models.CategoryRidePayment,
				Description: "ride payment",
				ReferenceID: s.TripID,
			}},
			settlementLeg{driver.ID, models.TransactionCredit, models.LedgerEntry{
				Amount:      models.RoundMoney(s.DriverShare),
				Category:    models.CategoryRideEarning,
				Description: "ride earning",
				ReferenceID: s.TripID,
			}},
		)
	}

	var applied []*models.Transaction
	err = uc.walletRepo.Mutate(ctx, walletIDs, func(tx wallet.LedgerTx) ([]*models.Transaction, error) {
		applied = nil
		now := uc.now()
		for _, leg := range legs {
			if !leg.entry.Amount.IsPositive() {
				continue
			}
			done, err := tx.HasReference(leg.walletID, s.TripID, leg.entry.Category, leg.typ)
			if err != nil {
				return nil, err
			}
			if done {
				continue
			}

			var txn *models.Transaction
			if leg.typ == models.TransactionDebit {
				txn, err = debit(tx.Wallet(leg.walletID), now, leg.entry, models.TransactionCompleted)
			} else {
				txn, err = credit(tx.Wallet(leg.walletID), now, leg.entry, models.TransactionCompleted)
			}
			if err != nil {
				return nil, err
			}
			applied = append(applied, txn)
		}
		return applied, nil
	})
	if err != nil {
		return nil, uc.translate(err)
	}

	if len(applied) == 0 {
		logger.InfoCtx(ctx, "Trip already settled", logger.String("trip_id", s.TripID))
	} else {
		logger.InfoCtx(ctx, "Trip settled",
			logger.String("trip_id", s.TripID),
			logger.String("payment_method", string(s.Method)),
			logger.Int("transactions", len(applied)))
	}
	return applied, nil
}

// RefundRide credits the requester. A trip is refunded at most once.
func (uc *walletUC) RefundRide(ctx context.Context, tripID, accountID string, amount decimal.Decimal, reason string) (*models.Transaction, error) {
	if tripID == "" {
		return nil, apperror.Validation("trip id is required")
	}
	if reason == "" {
		reason = "ride refund"
	}
	return uc.Credit(ctx, accountID, models.LedgerEntry{
		Amount:      amount,
		Category:    models.CategoryRefund,
		Description: reason,
		ReferenceID: tripID,
	})
}
