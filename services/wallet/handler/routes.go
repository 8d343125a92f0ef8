package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/services/wallet"
	httpHandler "github.com/piresc/ridepay/services/wallet/handler/http"
)

// Handler combines all handlers for the wallet service
type Handler struct {
	walletHTTP *httpHandler.WalletHandler
}

// NewHandler creates a new combined handler
func NewHandler(walletUC wallet.WalletUC) *Handler {
	return &Handler{
		walletHTTP: httpHandler.NewWalletHandler(walletUC),
	}
}

// RegisterRoutes registers the wallet endpoints on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	w := api.Group("/wallet")
	w.GET("", h.walletHTTP.GetWallet)
	w.GET("/transactions", h.walletHTTP.ListTransactions)
	w.POST("/topup", h.walletHTTP.Topup)
	w.POST("/withdraw", h.walletHTTP.Withdraw)
	w.POST("/transfer", h.walletHTTP.Transfer)
}
