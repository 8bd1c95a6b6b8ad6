package domain

import "time"

// Account represents a user of the budget system.
//
// The role association is a nullable foreign key: RoleID == nil means the
// account carries no role claim. Transactions are never held on the account;
// they are looked up by account id through the transaction repository.
type Account struct {
	ID           int64     `db:"id" json:"id"`                  // Primary key, BIGSERIAL in DB
	FirstName    string    `db:"first_name" json:"first_name"`  // Required, max 100 characters
	LastName     string    `db:"last_name" json:"last_name"`    // Required, max 100 characters
	Username     string    `db:"username" json:"username"`      // Globally unique
	Email        string    `db:"email" json:"email"`            // Globally unique
	PasswordHash string    `db:"password_hash" json:"-"`        // bcrypt hash, never serialized
	RoleID       *int64    `db:"role_id" json:"role_id"`        // Nullable FK to Role
	RoleName     *string   `db:"role_name" json:"role_name"`    // Joined on reads, nil when no role
	CreatedAt    time.Time `db:"created_at" json:"created_at"`  // Immutable once set
}

// NewAccount creates a new Account instance with the creation timestamp set.
// The password hash must already be computed by the caller.
func NewAccount(firstName, lastName, username, email, passwordHash string, roleID *int64) *Account {
	return &Account{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    time.Now().UTC(),
	}
}
