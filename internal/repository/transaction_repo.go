package repository

import (
	"context"
	"time"

	"budgetd/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations,
// including the predicate finders consumed by the aggregation engine. All
// finders are scoped to one account; an id that matches no stored record
// simply yields an empty result set. Date windows are inclusive on both ends.
type TransactionRepository interface {
	// CreateTransaction inserts a new transaction record and sets its generated id.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionByID retrieves a transaction by its id.
	GetTransactionByID(ctx context.Context, q DBExecutor, id int64) (*domain.Transaction, error)
	// ListTransactions retrieves all transactions regardless of account.
	ListTransactions(ctx context.Context, q DBExecutor) ([]domain.Transaction, error)
	// UpdateTransaction overwrites the stored transaction identified by transaction.ID.
	UpdateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// DeleteTransaction removes a transaction by id. Deleting a nonexistent id is not an error.
	DeleteTransaction(ctx context.Context, q DBExecutor, id int64) error

	// FindByAccount retrieves the unfiltered transaction set for an account.
	FindByAccount(ctx context.Context, q DBExecutor, accountID int64) ([]domain.Transaction, error)
	// FindByAccountAndType retrieves an account's transactions of exactly one type.
	FindByAccountAndType(ctx context.Context, q DBExecutor, accountID int64, txType domain.TransactionType) ([]domain.Transaction, error)
	// FindByAccountAndDateRange retrieves an account's transactions with date in [start, end].
	FindByAccountAndDateRange(ctx context.Context, q DBExecutor, accountID int64, start, end time.Time) ([]domain.Transaction, error)
	// FindByAccountTypeAndDateRange is the conjunction of the type and date-range predicates.
	FindByAccountTypeAndDateRange(ctx context.Context, q DBExecutor, accountID int64, txType domain.TransactionType, start, end time.Time) ([]domain.Transaction, error)
	// FindByAccountCategoryAndDateRange retrieves an account's transactions in one category within the date window.
	FindByAccountCategoryAndDateRange(ctx context.Context, q DBExecutor, accountID, categoryID int64, start, end time.Time) ([]domain.Transaction, error)
	// DeleteByAccount removes every transaction owned by the account. Not reversible.
	DeleteByAccount(ctx context.Context, q DBExecutor, accountID int64) error
}
