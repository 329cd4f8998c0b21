// Package api exposes the HTTP surface: account creation, account lookup and
// transfers, with domain errors mapped to status codes.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/altpay/account-transfer-service/internal/ledger"
	"github.com/altpay/account-transfer-service/internal/models"
)

// Handler wires the ledger service to HTTP routes.
type Handler struct {
	ledger *ledger.Ledger
	log    *zap.Logger
}

// NewHandler creates a Handler over the given ledger service.
func NewHandler(l *ledger.Ledger, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{ledger: l, log: log}
}

// Routes returns the service mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /v1/accounts", h.createAccount)
	mux.HandleFunc("GET /v1/accounts/{accountId}", h.getAccount)
	mux.HandleFunc("PUT /v1/accounts/transfer", h.transfer)
	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string          `json:"account_id"`
		Balance   decimal.Decimal `json:"balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.AccountID == "" {
		http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
		return
	}
	if req.Balance.Sign() < 0 {
		http.Error(w, "balance must not be negative", http.StatusBadRequest)
		return
	}

	account := models.Account{ID: req.AccountID, Balance: req.Balance}
	if err := h.ledger.CreateAccount(r.Context(), account); err != nil {
		var duplicate *ledger.DuplicateAccountError
		if errors.As(err, &duplicate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error("creating account failed", zap.String("account_id", req.AccountID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("accountId")

	account, err := h.ledger.GetAccount(r.Context(), accountID)
	if err != nil {
		var notFound *ledger.AccountNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error("retrieving account failed", zap.String("account_id", accountID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountFromID string          `json:"account_from_id"`
		AccountToID   string          `json:"account_to_id"`
		Amount        decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.AccountFromID == "" || req.AccountToID == "" {
		http.Error(w, "account_from_id and account_to_id are mandatory fields", http.StatusBadRequest)
		return
	}

	transfer := models.Transfer{
		FromAccount: req.AccountFromID,
		ToAccount:   req.AccountToID,
		Amount:      req.Amount,
	}
	if err := h.ledger.Transfer(r.Context(), transfer); err != nil {
		h.writeTransferError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// writeTransferError maps the transfer error taxonomy onto status codes:
// missing account 404, insufficient funds 422, self-transfer and bad
// amounts 400, anything else 500.
func (h *Handler) writeTransferError(w http.ResponseWriter, err error) {
	var notFound *ledger.AccountNotFoundError
	var insufficient *ledger.InsufficientFundsError

	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &insufficient):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ledger.ErrSameAccountTransfer), errors.Is(err, ledger.ErrNonPositiveAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error("transfer failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
