package usecase

import (
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
	"github.com/shopspring/decimal"
)

const (
	defaultDailyLimit   = 500
	defaultMonthlyLimit = 5000
	defaultCurrency     = "USD"
)

// walletUC implements the wallet.WalletUC interface
type walletUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	walletGW   wallet.WalletGW
	now        func() time.Time

	currency     string
	dailyLimit   decimal.Decimal
	monthlyLimit decimal.Decimal
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(
	cfg *models.Config,
	walletRepo wallet.WalletRepo,
	walletGW wallet.WalletGW,
) wallet.WalletUC {
	uc := &walletUC{
		cfg:          cfg,
		walletRepo:   walletRepo,
		walletGW:     walletGW,
		now:          models.Now,
		currency:     cfg.Wallet.Currency,
		dailyLimit:   models.Money(cfg.Wallet.DailyLimit),
		monthlyLimit: models.Money(cfg.Wallet.MonthlyLimit),
	}
	if uc.currency == "" {
		uc.currency = defaultCurrency
	}
	if !uc.dailyLimit.IsPositive() {
		uc.dailyLimit = decimal.NewFromInt(defaultDailyLimit)
	}
	if !uc.monthlyLimit.IsPositive() {
		uc.monthlyLimit = decimal.NewFromInt(defaultMonthlyLimit)
	}
	return uc
}
