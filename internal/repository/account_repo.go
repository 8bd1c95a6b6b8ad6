package repository

import (
	"context"

	"budgetd/internal/domain"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// CreateAccount inserts a new account and sets its generated id.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetAccountByID retrieves an account by its id.
	GetAccountByID(ctx context.Context, q DBExecutor, id int64) (*domain.Account, error)
	// GetAccountByUsername retrieves an account by its unique username.
	GetAccountByUsername(ctx context.Context, q DBExecutor, username string) (*domain.Account, error)
	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context, q DBExecutor) ([]domain.Account, error)
	// UpdateAccount overwrites the stored account identified by account.ID.
	UpdateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// DeleteAccount removes an account by id. Deleting a nonexistent id is not an error.
	DeleteAccount(ctx context.Context, q DBExecutor, id int64) error
}
