package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetd/internal/auth"
	"budgetd/internal/domain"
	"budgetd/internal/util"
)

func TestLogin(t *testing.T) {
	accRepo := new(MockAccountRepository)
	manager := auth.NewJWTManager("test-secret", time.Minute)
	svc := NewAuthService(nil, accRepo, manager)
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	role := "USER"
	account := &domain.Account{ID: 9, Username: "ada", PasswordHash: hash, RoleName: &role}
	accRepo.On("GetAccountByUsername", ctx, nil, "ada").Return(account, nil)

	token, err := svc.Login(ctx, "ada", "s3cret")

	require.NoError(t, err)
	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.AccountID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "ada", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	accRepo := new(MockAccountRepository)
	svc := NewAuthService(nil, accRepo, auth.NewJWTManager("test-secret", time.Minute))
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	accRepo.On("GetAccountByUsername", ctx, nil, "ada").Return(&domain.Account{Username: "ada", PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, "ada", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	accRepo := new(MockAccountRepository)
	svc := NewAuthService(nil, accRepo, auth.NewJWTManager("test-secret", time.Minute))
	ctx := context.Background()

	accRepo.On("GetAccountByUsername", ctx, nil, "ghost").Return(nil, util.ErrNotFound)

	_, err := svc.Login(ctx, "ghost", "whatever")
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
