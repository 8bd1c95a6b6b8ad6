package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"

	"github.com/jmoiron/sqlx"
)

// transactionColumns selects transaction fields plus the joined category
// title. The LEFT JOIN keeps uncategorized transactions in the result set
// with a NULL category_title.
const transactionColumns = `
	t.id, t.account_id, t.category_id, c.title AS category_title,
	t.description, t.amount, t.type, t.date`

const transactionFrom = ` FROM transactions t LEFT JOIN categories c ON c.id = t.category_id`

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (account_id, category_id, description, amount, type, date)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.Description,
		transaction.Amount,
		transaction.Type,
		transaction.Date,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction by its id using the provided DBExecutor.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.id = $1`
	err := q.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", id, err)
	}
	return &transaction, nil
}

// ListTransactions retrieves all transactions using the provided DBExecutor.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` ORDER BY t.id`
	if err := q.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction overwrites the stored transaction identified by transaction.ID.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `UPDATE transactions
              SET account_id = $1, category_id = $2, description = $3, amount = $4, type = $5, date = $6
              WHERE id = $7`
	result, err := q.ExecContext(ctx, query,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.Description,
		transaction.Amount,
		transaction.Type,
		transaction.Date,
		transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", transaction.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transaction %d: %w", transaction.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction by id using the provided DBExecutor.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, id int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}

// FindByAccount retrieves the unfiltered transaction set for an account.
func (r *TransactionRepository) FindByAccount(ctx context.Context, q repository.DBExecutor, accountID int64) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.account_id = $1`
	if err := q.SelectContext(ctx, &transactions, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for account %d: %w", accountID, err)
	}
	return transactions, nil
}

// FindByAccountAndType retrieves an account's transactions of exactly one type.
func (r *TransactionRepository) FindByAccountAndType(ctx context.Context, q repository.DBExecutor, accountID int64, txType domain.TransactionType) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.account_id = $1 AND t.type = $2`
	if err := q.SelectContext(ctx, &transactions, query, accountID, txType); err != nil {
		return nil, fmt.Errorf("failed to fetch %s transactions for account %d: %w", txType, accountID, err)
	}
	return transactions, nil
}

// FindByAccountAndDateRange retrieves an account's transactions with date in [start, end].
// A start after end matches nothing and returns an empty set.
func (r *TransactionRepository) FindByAccountAndDateRange(ctx context.Context, q repository.DBExecutor, accountID int64, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.account_id = $1 AND t.date BETWEEN $2 AND $3`
	if err := q.SelectContext(ctx, &transactions, query, accountID, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for account %d between %s and %s: %w",
			accountID, start.Format("2006-01-02"), end.Format("2006-01-02"), err)
	}
	return transactions, nil
}

// FindByAccountTypeAndDateRange is the conjunction of the type and date-range predicates.
func (r *TransactionRepository) FindByAccountTypeAndDateRange(ctx context.Context, q repository.DBExecutor, accountID int64, txType domain.TransactionType, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.account_id = $1 AND t.type = $2 AND t.date BETWEEN $3 AND $4`
	if err := q.SelectContext(ctx, &transactions, query, accountID, txType, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch %s transactions for account %d between %s and %s: %w",
			txType, accountID, start.Format("2006-01-02"), end.Format("2006-01-02"), err)
	}
	return transactions, nil
}

// FindByAccountCategoryAndDateRange retrieves an account's transactions in one
// category within the date window.
func (r *TransactionRepository) FindByAccountCategoryAndDateRange(ctx context.Context, q repository.DBExecutor, accountID, categoryID int64, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT` + transactionColumns + transactionFrom + ` WHERE t.account_id = $1 AND t.category_id = $2 AND t.date BETWEEN $3 AND $4`
	if err := q.SelectContext(ctx, &transactions, query, accountID, categoryID, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for account %d category %d: %w", accountID, categoryID, err)
	}
	return transactions, nil
}

// DeleteByAccount removes every transaction owned by the account.
func (r *TransactionRepository) DeleteByAccount(ctx context.Context, q repository.DBExecutor, accountID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to delete transactions for account %d: %w", accountID, err)
	}
	return nil
}
