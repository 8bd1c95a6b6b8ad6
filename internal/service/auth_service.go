package service

import (
	"context"
	"fmt"

	"budgetd/internal/auth"
	"budgetd/internal/repository"
	"budgetd/internal/util"
)

// AuthService authenticates callers and issues tokens carrying their
// identity and role claim.
type AuthService interface {
	// Login verifies the username/password pair and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	dbExecutor  repository.DBExecutor
	accountRepo repository.AccountRepository
	jwtManager  *auth.JWTManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(dbExecutor repository.DBExecutor, accountRepo repository.AccountRepository, jwtManager *auth.JWTManager) AuthService {
	return &authService{
		dbExecutor:  dbExecutor,
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
	}
}

// Login looks up the account by username and compares the bcrypt hash.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.accountRepo.GetAccountByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: failed to look up account '%s': %w", username, err)
	}

	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		return "", err
	}

	token, err := s.jwtManager.Generate(account)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}
