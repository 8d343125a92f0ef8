package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/middleware"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/internal/utils"
	"github.com/piresc/ridepay/services/wallet"
)

// WalletHandler handles HTTP requests for the caller's wallet
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet HTTP handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// GetWallet returns the caller's balance and spend counters
func (h *WalletHandler) GetWallet(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	snapshot, err := h.walletUC.GetWallet(c.Request().Context(), actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved successfully", snapshot)
}

// ListTransactions pages through the caller's history with ?limit= and ?offset=
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var filter models.TransactionFilter
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		filter.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid offset")
		}
		filter.Offset = n
	}

	txns, err := h.walletUC.ListTransactions(c.Request().Context(), actorID, filter)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txns)
}

// Topup credits the caller's wallet from a confirmed external payment
func (h *WalletHandler) Topup(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TopupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	txn, err := h.walletUC.TopupWallet(c.Request().Context(), actorID, req.Amount, req.Confirmation)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Wallet topped up successfully", txn)
}

// Withdraw reserves funds for a payout to an external destination
func (h *WalletHandler) Withdraw(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	txn, err := h.walletUC.WithdrawFromWallet(c.Request().Context(), actorID, req.Amount, req.Destination)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Withdrawal is being processed", txn)
}

// Transfer moves funds from the caller to another account
func (h *WalletHandler) Transfer(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.ToAccountID == "" {
		return utils.BadRequestResponse(c, "to_account_id is required")
	}

	result, err := h.walletUC.TransferWallet(c.Request().Context(), actorID, req.ToAccountID, req.Amount, req.Description)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transfer completed successfully", result)
}
