package service

import (
	"context"
	"fmt"

	"budgetd/internal/auth"
	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"
)

// RolePayload carries the nested role reference on account create/update
// requests. A payload with a nil ID means "don't touch the role", which is
// distinct from omitting the payload entirely only in intent, not effect.
type RolePayload struct {
	ID *int64 `json:"id"`
}

// AccountInput is the create/update payload for accounts. Password is
// plaintext and hashed before anything is persisted.
type AccountInput struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Password  string       `json:"password"`
	Role      *RolePayload `json:"role"`
}

// AccountService defines account lifecycle operations.
type AccountService interface {
	GetAllAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	AddAccount(ctx context.Context, input *AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, input *AccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type accountService struct {
	dbExecutor  repository.DBExecutor
	accountRepo repository.AccountRepository
	roleRepo    repository.RoleRepository
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(dbExecutor repository.DBExecutor, accountRepo repository.AccountRepository, roleRepo repository.RoleRepository) AccountService {
	return &accountService{
		dbExecutor:  dbExecutor,
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
	}
}

const maxAccountFieldLen = 100

func validateAccountInput(input *AccountInput, requirePassword bool) error {
	if input.FirstName == "" || input.LastName == "" {
		return fmt.Errorf("first and last name are required: %w", util.ErrInvalidInput)
	}
	if len(input.FirstName) > maxAccountFieldLen || len(input.LastName) > maxAccountFieldLen {
		return fmt.Errorf("name exceeds %d characters: %w", maxAccountFieldLen, util.ErrInvalidInput)
	}
	if len(input.Username) > maxAccountFieldLen || len(input.Email) > maxAccountFieldLen {
		return fmt.Errorf("username or email exceeds %d characters: %w", maxAccountFieldLen, util.ErrInvalidInput)
	}
	if requirePassword && input.Password == "" {
		return fmt.Errorf("password is required: %w", util.ErrInvalidInput)
	}
	return nil
}

// resolveRole verifies the referenced role exists. Only called when the
// payload actually carries a role id.
func (s *accountService) resolveRole(ctx context.Context, roleID int64) (*domain.Role, error) {
	role, err := s.roleRepo.GetRoleByID(ctx, s.dbExecutor, roleID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, fmt.Errorf("role %d: %w", roleID, util.ErrReferenceNotFound)
		}
		return nil, err
	}
	return role, nil
}

func (s *accountService) GetAllAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, s.dbExecutor)
}

func (s *accountService) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accountRepo.GetAccountByID(ctx, s.dbExecutor, id)
}

// AddAccount hashes the plaintext password and resolves the role reference
// before persisting. A role payload with an id that does not exist fails the
// whole operation.
func (s *accountService) AddAccount(ctx context.Context, input *AccountInput) (*domain.Account, error) {
	if err := validateAccountInput(input, true); err != nil {
		return nil, err
	}
	if input.Username == "" {
		return nil, fmt.Errorf("username is required: %w", util.ErrInvalidInput)
	}

	var roleID *int64
	var roleName *string
	if input.Role != nil && input.Role.ID != nil {
		role, err := s.resolveRole(ctx, *input.Role.ID)
		if err != nil {
			return nil, err
		}
		roleID = &role.ID
		roleName = &role.Name
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(input.FirstName, input.LastName, input.Username, input.Email, hash, roleID)
	if err := s.accountRepo.CreateAccount(ctx, s.dbExecutor, account); err != nil {
		return nil, err
	}
	account.RoleName = roleName
	return account, nil
}

// UpdateAccount overwrites mutable fields of an existing account. An empty
// password means "keep the stored hash"; a role payload without an id leaves
// the stored role untouched and performs no role lookup.
func (s *accountService) UpdateAccount(ctx context.Context, id int64, input *AccountInput) (*domain.Account, error) {
	if err := validateAccountInput(input, false); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", id, err)
	}

	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.Email = input.Email

	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	if input.Role != nil && input.Role.ID != nil {
		role, err := s.resolveRole(ctx, *input.Role.ID)
		if err != nil {
			return nil, err
		}
		account.RoleID = &role.ID
		account.RoleName = &role.Name
	}

	if err := s.accountRepo.UpdateAccount(ctx, s.dbExecutor, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accountRepo.DeleteAccount(ctx, s.dbExecutor, id)
}
