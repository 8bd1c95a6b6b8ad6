package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"budgetd/internal/domain"
	"budgetd/internal/service"
	"budgetd/internal/util"
)

// TransactionHandler handles HTTP requests for transactions and the
// aggregation queries over them.
type TransactionHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// TransactionRequest represents the create/update request body. The date is
// a plain calendar date string ("2006-01-02").
type TransactionRequest struct {
	AccountID   int64                  `json:"account_id"`
	CategoryID  *int64                 `json:"category_id"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	Date        string                 `json:"date"`
}

// toDomain converts the request into a domain transaction, rejecting
// malformed dates.
func (req *TransactionRequest) toDomain() (*domain.Transaction, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, util.ErrInvalidInput
	}
	return domain.NewTransaction(req.AccountID, req.CategoryID, req.Description, req.Amount, req.Type, date), nil
}

// List handles GET /transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.GetAllTransactions(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// Get handles GET /transactions/{transactionID}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "transactionID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	transaction, err := h.service.GetTransactionByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transaction)
}

// Add handles POST /transactions
func (h *TransactionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	transaction, err := req.toDomain()
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	created, err := h.service.AddTransaction(r.Context(), transaction)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, created)
}

// Update handles PUT /transactions/{transactionID}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "transactionID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	transaction, err := req.toDomain()
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	updated, err := h.service.UpdateTransaction(r.Context(), id, transaction)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "transactionID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ByAccount handles GET /transactions/account/{accountID}
func (h *TransactionHandler) ByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	transactions, err := h.service.GetTransactionsByAccount(r.Context(), accountID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// DeleteAllForAccount handles DELETE /transactions/account/{accountID}
func (h *TransactionHandler) DeleteAllForAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if err := h.service.DeleteAllTransactions(r.Context(), accountID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ByMonth handles GET /transactions/account/{accountID}/by-month/{year}/{month}
func (h *TransactionHandler) ByMonth(w http.ResponseWriter, r *http.Request) {
	accountID, month, year, err := monthParams(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	transactions, err := h.service.GetTransactionsByMonth(r.Context(), accountID, month, year)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// BetweenDates handles GET /transactions/account/{accountID}/between-dates?start=&end=
func (h *TransactionHandler) BetweenDates(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	start, end, err := queryDateRange(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	transactions, err := h.service.GetTransactionsBetweenDates(r.Context(), accountID, start, end)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// ByCategoryAndDates handles GET /transactions/account/{accountID}/category/{categoryID}?start=&end=
func (h *TransactionHandler) ByCategoryAndDates(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	start, end, err := queryDateRange(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	transactions, err := h.service.GetTransactionsByCategoryAndDate(r.Context(), accountID, categoryID, start, end)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// TotalIncome handles GET /transactions/account/{accountID}/total-income
func (h *TransactionHandler) TotalIncome(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccount(w, r, h.service.GetTotalIncome)
}

// TotalExpense handles GET /transactions/account/{accountID}/total-expense
func (h *TransactionHandler) TotalExpense(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccount(w, r, h.service.GetTotalExpense)
}

// Balance handles GET /transactions/account/{accountID}/balance
func (h *TransactionHandler) Balance(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccount(w, r, h.service.GetBalance)
}

// TotalIncomeBetweenDates handles GET /transactions/account/{accountID}/total-income-between?start=&end=
func (h *TransactionHandler) TotalIncomeBetweenDates(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccountAndRange(w, r, h.service.GetTotalIncomeBetweenDates)
}

// TotalExpenseBetweenDates handles GET /transactions/account/{accountID}/total-expense-between?start=&end=
func (h *TransactionHandler) TotalExpenseBetweenDates(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccountAndRange(w, r, h.service.GetTotalExpenseBetweenDates)
}

// BalanceBetweenDates handles GET /transactions/account/{accountID}/balance-between?start=&end=
func (h *TransactionHandler) BalanceBetweenDates(w http.ResponseWriter, r *http.Request) {
	h.scalarByAccountAndRange(w, r, h.service.GetBalanceBetweenDates)
}

// ExpenseByCategory handles GET /transactions/account/{accountID}/expense-by-category
func (h *TransactionHandler) ExpenseByCategory(w http.ResponseWriter, r *http.Request) {
	h.groupingByAccount(w, r, h.service.GetExpenseByCategory)
}

// IncomeByCategory handles GET /transactions/account/{accountID}/income-by-category
func (h *TransactionHandler) IncomeByCategory(w http.ResponseWriter, r *http.Request) {
	h.groupingByAccount(w, r, h.service.GetIncomeByCategory)
}

// AverageExpenseByMonth handles GET /transactions/account/{accountID}/average-expense/{year}/{month}
func (h *TransactionHandler) AverageExpenseByMonth(w http.ResponseWriter, r *http.Request) {
	accountID, month, year, err := monthParams(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	average, err := h.service.GetAverageExpenseByMonth(r.Context(), accountID, month, year)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, average)
}

// AverageIncomeByMonth handles GET /transactions/account/{accountID}/average-income/{year}/{month}
func (h *TransactionHandler) AverageIncomeByMonth(w http.ResponseWriter, r *http.Request) {
	accountID, month, year, err := monthParams(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	average, err := h.service.GetAverageIncomeByMonth(r.Context(), accountID, month, year)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, average)
}

// MonthlyExpenses handles GET /transactions/account/{accountID}/monthly-expenses/{year}
func (h *TransactionHandler) MonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	h.yearGrouping(w, r, h.service.GetMonthlyExpenses)
}

// MonthlyIncomes handles GET /transactions/account/{accountID}/monthly-incomes/{year}
func (h *TransactionHandler) MonthlyIncomes(w http.ResponseWriter, r *http.Request) {
	h.yearGrouping(w, r, h.service.GetMonthlyIncomes)
}

func (h *TransactionHandler) scalarByAccount(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, accountID int64) (decimal.Decimal, error)) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	value, err := query(r.Context(), accountID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, value)
}

func (h *TransactionHandler) scalarByAccountAndRange(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error)) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	start, end, err := queryDateRange(r)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	value, err := query(r.Context(), accountID, start, end)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, value)
}

func (h *TransactionHandler) groupingByAccount(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, accountID int64) (map[string]decimal.Decimal, error)) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	grouping, err := query(r.Context(), accountID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, grouping)
}

func (h *TransactionHandler) yearGrouping(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, accountID int64, year int) (map[string]decimal.Decimal, error)) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	year, err := pathInt(r, "year")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	grouping, err := query(r.Context(), accountID, year)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, grouping)
}

// monthParams parses accountID, year and month path parameters, rejecting
// months outside 1..12.
func monthParams(r *http.Request) (accountID int64, month time.Month, year int, err error) {
	accountID, err = pathID(r, "accountID")
	if err != nil {
		return 0, 0, 0, err
	}
	year, err = pathInt(r, "year")
	if err != nil {
		return 0, 0, 0, err
	}
	m, err := pathInt(r, "month")
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, util.ErrInvalidInput
	}
	return accountID, time.Month(m), year, nil
}
