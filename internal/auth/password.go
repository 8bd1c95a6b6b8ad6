package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"budgetd/internal/util"
)

// MinPasswordLen is the minimum accepted plaintext password length.
const MinPasswordLen = 5

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) < MinPasswordLen {
		return "", fmt.Errorf("password must be at least %d characters: %w", MinPasswordLen, util.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash against a plaintext candidate.
// Returns util.ErrInvalidCredentials on mismatch.
func CheckPassword(hash, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return util.ErrInvalidCredentials
	}
	return nil
}
