package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vibrovolt/internal/wallet"
)

// WalletHandlers serves wallet state, top-ups and credit redemption.
type WalletHandlers struct {
	service *wallet.Service
	logger  *zap.Logger
}

// NewWalletHandlers returns handler.
func NewWalletHandlers(service *wallet.Service, logger *zap.Logger) *WalletHandlers {
	return &WalletHandlers{service: service, logger: logger}
}

// Get handles GET /api/wallet.
func (h *WalletHandlers) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Ledger().Snapshot())
}

// AddFunds handles POST /api/wallet/funds.
func (h *WalletHandlers) AddFunds(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.AddFunds(r.Context(), req.Amount, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, wallet.ErrPaymentFailed):
			writeError(w, http.StatusPaymentRequired, "Payment failed. Please try again.")
		default:
			h.logger.Error("add funds failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to add funds")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"transactionId": result.TransactionID,
		"amount":        result.Amount,
		"paymentMethod": result.PaymentMethod,
		"newBalance":    result.NewBalance,
	})
}

// Redeem handles POST /api/wallet/redeem.
func (h *WalletHandlers) Redeem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PartnerID string `json:"partnerId"`
		Credits   int    `json:"credits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tx, err := h.service.Ledger().RedeemCredits(req.PartnerID, req.Credits)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrPartnerNotFound):
			writeError(w, http.StatusNotFound, "Partner not found")
		case errors.Is(err, wallet.ErrBelowMinimum):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, wallet.ErrInsufficientCredits):
			writeError(w, http.StatusUnprocessableEntity, "Insufficient credits")
		default:
			h.logger.Error("redeem failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to redeem credits")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"transaction":      tx,
		"remainingCredits": h.service.Ledger().CarbonCredits(),
	})
}
