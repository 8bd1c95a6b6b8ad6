package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"budgetd/internal/service"
	"budgetd/internal/util"
)

// AccountHandler handles HTTP requests for account management.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.GetAllAccounts(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, accounts)
}

// Get handles GET /accounts/{accountID}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	account, err := h.service.GetAccountByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, account)
}

// Add handles POST /accounts
func (h *AccountHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input service.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	account, err := h.service.AddAccount(r.Context(), &input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, account)
}

// Update handles PUT /accounts/{accountID}
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	var input service.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	account, err := h.service.UpdateAccount(r.Context(), id, &input)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, account)
}

// Delete handles DELETE /accounts/{accountID}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if err := h.service.DeleteAccount(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
