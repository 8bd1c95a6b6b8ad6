package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// accountColumns selects account fields plus the joined role name.
const accountColumns = `
	a.id, a.first_name, a.last_name, a.username, a.email, a.password_hash,
	a.role_id, r.name AS role_name, a.created_at`

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{}
}

// CreateAccount inserts a new account using the provided DBExecutor.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO accounts (first_name, last_name, username, email, password_hash, role_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		account.FirstName,
		account.LastName,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.RoleID,
		account.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account with that username or email exists: %w", util.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByID retrieves an account by its id using the provided DBExecutor.
func (r *AccountRepository) GetAccountByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + `
              FROM accounts a LEFT JOIN roles r ON r.id = a.role_id
              WHERE a.id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// GetAccountByUsername retrieves an account by its username using the provided DBExecutor.
func (r *AccountRepository) GetAccountByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + `
              FROM accounts a LEFT JOIN roles r ON r.id = a.role_id
              WHERE a.username = $1`
	err := q.GetContext(ctx, &account, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by username '%s': %w", username, err)
	}
	return &account, nil
}

// ListAccounts retrieves all accounts using the provided DBExecutor.
func (r *AccountRepository) ListAccounts(ctx context.Context, q repository.DBExecutor) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT ` + accountColumns + `
              FROM accounts a LEFT JOIN roles r ON r.id = a.role_id
              ORDER BY a.id`
	if err := q.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount overwrites the stored account identified by account.ID.
// The created_at column is immutable and deliberately not part of the update.
func (r *AccountRepository) UpdateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `UPDATE accounts
              SET first_name = $1, last_name = $2, email = $3, password_hash = $4, role_id = $5
              WHERE id = $6`
	result, err := q.ExecContext(ctx, query,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.RoleID,
		account.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account with that email exists: %w", util.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to update account %d: %w", account.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating account %d: %w", account.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account by id using the provided DBExecutor.
func (r *AccountRepository) DeleteAccount(ctx context.Context, q repository.DBExecutor, id int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}
