package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"
)

// TransactionService defines transaction lifecycle operations plus the
// aggregation queries over one account's transaction set.
type TransactionService interface {
	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	AddTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	DeleteAllTransactions(ctx context.Context, accountID int64) error

	GetTransactionsByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	GetTransactionsByMonth(ctx context.Context, accountID int64, month time.Month, year int) ([]domain.Transaction, error)
	GetTransactionsBetweenDates(ctx context.Context, accountID int64, start, end time.Time) ([]domain.Transaction, error)
	GetTransactionsByCategoryAndDate(ctx context.Context, accountID, categoryID int64, start, end time.Time) ([]domain.Transaction, error)

	GetTotalIncome(ctx context.Context, accountID int64) (decimal.Decimal, error)
	GetTotalExpense(ctx context.Context, accountID int64) (decimal.Decimal, error)
	GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	GetTotalIncomeBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error)
	GetTotalExpenseBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error)
	GetBalanceBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error)
	GetExpenseByCategory(ctx context.Context, accountID int64) (map[string]decimal.Decimal, error)
	GetIncomeByCategory(ctx context.Context, accountID int64) (map[string]decimal.Decimal, error)
	GetAverageExpenseByMonth(ctx context.Context, accountID int64, month time.Month, year int) (decimal.Decimal, error)
	GetAverageIncomeByMonth(ctx context.Context, accountID int64, month time.Month, year int) (decimal.Decimal, error)
	GetMonthlyExpenses(ctx context.Context, accountID int64, year int) (map[string]decimal.Decimal, error)
	GetMonthlyIncomes(ctx context.Context, accountID int64, year int) (map[string]decimal.Decimal, error)
}

// transactionService implements the TransactionService interface.
type transactionService struct {
	dbExecutor      repository.DBExecutor
	transactionRepo repository.TransactionRepository
	categoryRepo    repository.CategoryRepository
	accountRepo     repository.AccountRepository
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(
	dbExecutor repository.DBExecutor,
	transactionRepo repository.TransactionRepository,
	categoryRepo repository.CategoryRepository,
	accountRepo repository.AccountRepository,
) TransactionService {
	return &transactionService{
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// validateTransaction rejects structurally invalid payloads before anything
// reaches the store or the aggregation engine.
func validateTransaction(transaction *domain.Transaction) error {
	if transaction.AccountID == 0 {
		return fmt.Errorf("account id is required: %w", util.ErrInvalidInput)
	}
	if transaction.Description == "" {
		return fmt.Errorf("description is required: %w", util.ErrInvalidInput)
	}
	if len(transaction.Description) > domain.MaxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters: %w", domain.MaxDescriptionLen, util.ErrInvalidInput)
	}
	if !transaction.Type.Valid() {
		return fmt.Errorf("type must be INCOME or EXPENSE: %w", util.ErrInvalidInput)
	}
	if transaction.Date.IsZero() {
		return fmt.Errorf("date is required: %w", util.ErrInvalidInput)
	}
	// Amounts persist at NUMERIC(10, 2); finer scale would be silently
	// rounded by the store, so reject it here instead.
	if transaction.Amount.Exponent() < -amountScale {
		return fmt.Errorf("amount has more than %d fractional digits: %w", amountScale, util.ErrInvalidInput)
	}
	return nil
}

// resolveReferences checks that the owning account and, when present, the
// category exist. A dangling reference is a validation failure distinct from
// not-found on the transaction itself.
func (s *transactionService) resolveReferences(ctx context.Context, transaction *domain.Transaction) error {
	if _, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, transaction.AccountID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return fmt.Errorf("account %d: %w", transaction.AccountID, util.ErrReferenceNotFound)
		}
		return err
	}
	if transaction.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, *transaction.CategoryID); err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return fmt.Errorf("category %d: %w", *transaction.CategoryID, util.ErrReferenceNotFound)
			}
			return err
		}
	}
	return nil
}

func (s *transactionService) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, s.dbExecutor)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transactionRepo.GetTransactionByID(ctx, s.dbExecutor, id)
}

func (s *transactionService) AddTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, transaction); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.CreateTransaction(ctx, s.dbExecutor, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// UpdateTransaction overwrites an existing transaction's fields. The target
// must exist; a missing id is a terminal error.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, transaction *domain.Transaction) (*domain.Transaction, error) {
	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}
	existing, err := s.transactionRepo.GetTransactionByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", id, err)
	}
	if err := s.resolveReferences(ctx, transaction); err != nil {
		return nil, err
	}

	existing.AccountID = transaction.AccountID
	existing.CategoryID = transaction.CategoryID
	existing.Description = transaction.Description
	existing.Amount = transaction.Amount
	existing.Type = transaction.Type
	existing.Date = transaction.Date
	if err := s.transactionRepo.UpdateTransaction(ctx, s.dbExecutor, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.transactionRepo.DeleteTransaction(ctx, s.dbExecutor, id)
}

func (s *transactionService) DeleteAllTransactions(ctx context.Context, accountID int64) error {
	return s.transactionRepo.DeleteByAccount(ctx, s.dbExecutor, accountID)
}

func (s *transactionService) GetTransactionsByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByAccount(ctx, s.dbExecutor, accountID)
}

// GetTransactionsByMonth resolves the inclusive [first day, last day] window
// of the calendar month and delegates to the date-range finder.
func (s *transactionService) GetTransactionsByMonth(ctx context.Context, accountID int64, month time.Month, year int) ([]domain.Transaction, error) {
	start, end := monthRange(month, year)
	return s.transactionRepo.FindByAccountAndDateRange(ctx, s.dbExecutor, accountID, start, end)
}

func (s *transactionService) GetTransactionsBetweenDates(ctx context.Context, accountID int64, start, end time.Time) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByAccountAndDateRange(ctx, s.dbExecutor, accountID, start, end)
}

func (s *transactionService) GetTransactionsByCategoryAndDate(ctx context.Context, accountID, categoryID int64, start, end time.Time) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByAccountCategoryAndDateRange(ctx, s.dbExecutor, accountID, categoryID, start, end)
}

func (s *transactionService) GetTotalIncome(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	return s.sumByType(ctx, accountID, domain.TransactionTypeIncome)
}

func (s *transactionService) GetTotalExpense(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	return s.sumByType(ctx, accountID, domain.TransactionTypeExpense)
}

// GetBalance is total income minus total expense. The two totals are two
// independent store reads; a concurrent write landing between them can yield
// a balance consistent with neither read alone. That race is accepted.
func (s *transactionService) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	income, err := s.GetTotalIncome(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := s.GetTotalExpense(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense), nil
}

func (s *transactionService) GetTotalIncomeBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error) {
	return s.sumByTypeBetween(ctx, accountID, domain.TransactionTypeIncome, start, end)
}

func (s *transactionService) GetTotalExpenseBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error) {
	return s.sumByTypeBetween(ctx, accountID, domain.TransactionTypeExpense, start, end)
}

func (s *transactionService) GetBalanceBetweenDates(ctx context.Context, accountID int64, start, end time.Time) (decimal.Decimal, error) {
	income, err := s.GetTotalIncomeBetweenDates(ctx, accountID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := s.GetTotalExpenseBetweenDates(ctx, accountID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expense), nil
}

func (s *transactionService) GetExpenseByCategory(ctx context.Context, accountID int64) (map[string]decimal.Decimal, error) {
	return s.groupByType(ctx, accountID, domain.TransactionTypeExpense)
}

func (s *transactionService) GetIncomeByCategory(ctx context.Context, accountID int64) (map[string]decimal.Decimal, error) {
	return s.groupByType(ctx, accountID, domain.TransactionTypeIncome)
}

func (s *transactionService) GetAverageExpenseByMonth(ctx context.Context, accountID int64, month time.Month, year int) (decimal.Decimal, error) {
	return s.averageByMonth(ctx, accountID, domain.TransactionTypeExpense, month, year)
}

func (s *transactionService) GetAverageIncomeByMonth(ctx context.Context, accountID int64, month time.Month, year int) (decimal.Decimal, error) {
	return s.averageByMonth(ctx, accountID, domain.TransactionTypeIncome, month, year)
}

func (s *transactionService) GetMonthlyExpenses(ctx context.Context, accountID int64, year int) (map[string]decimal.Decimal, error) {
	return s.monthlyBreakdown(ctx, accountID, domain.TransactionTypeExpense, year)
}

func (s *transactionService) GetMonthlyIncomes(ctx context.Context, accountID int64, year int) (map[string]decimal.Decimal, error) {
	return s.monthlyBreakdown(ctx, accountID, domain.TransactionTypeIncome, year)
}

func (s *transactionService) sumByType(ctx context.Context, accountID int64, txType domain.TransactionType) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByAccountAndType(ctx, s.dbExecutor, accountID, txType)
	if err != nil {
		return decimal.Zero, err
	}
	return SumAmounts(transactions), nil
}

func (s *transactionService) sumByTypeBetween(ctx context.Context, accountID int64, txType domain.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByAccountTypeAndDateRange(ctx, s.dbExecutor, accountID, txType, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return SumAmounts(transactions), nil
}

func (s *transactionService) groupByType(ctx context.Context, accountID int64, txType domain.TransactionType) (map[string]decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByAccountAndType(ctx, s.dbExecutor, accountID, txType)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(transactions), nil
}

// averageByMonth fetches the account's full per-type transaction list and
// filters by month and year in memory. The only store predicate used here is
// "by type"; no date-range query is issued.
func (s *transactionService) averageByMonth(ctx context.Context, accountID int64, txType domain.TransactionType, month time.Month, year int) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByAccountAndType(ctx, s.dbExecutor, accountID, txType)
	if err != nil {
		return decimal.Zero, err
	}
	return AverageAmount(FilterByMonthYear(transactions, month, year)), nil
}

func (s *transactionService) monthlyBreakdown(ctx context.Context, accountID int64, txType domain.TransactionType, year int) (map[string]decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByAccountAndType(ctx, s.dbExecutor, accountID, txType)
	if err != nil {
		return nil, err
	}
	return GroupByMonthName(FilterByYear(transactions, year)), nil
}

// monthRange returns the first and last calendar day of the month. AddDate
// resolves month length from the calendar, including leap-year February.
func monthRange(month time.Month, year int) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
