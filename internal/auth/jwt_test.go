package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetd/internal/domain"
)

func testAccount() *domain.Account {
	role := "USER"
	return &domain.Account{
		ID:       42,
		Username: "ada",
		RoleName: &role,
	}
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Minute)

	token, err := manager.Generate(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "ada", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTGenerate_NoRole(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Minute)

	account := testAccount()
	account.RoleName = nil
	token, err := manager.Generate(account)
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestJWTValidate_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Minute).Generate(testAccount())
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Minute).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidate_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(testAccount())
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidate_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Minute)

	_, err := manager.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
