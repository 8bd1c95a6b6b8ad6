package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType classifies a transaction as income or expense.
// The type field, not the amount's sign, determines the classification.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// MaxDescriptionLen caps the transaction description length.
const MaxDescriptionLen = 255

// Transaction is a dated monetary record owned by one account.
//
// The category is optional: CategoryID == nil means uncategorized.
// CategoryTitle is populated by read queries (LEFT JOIN on categories) so
// that aggregations can group by title without a second lookup; it is nil
// whenever the category is absent.
type Transaction struct {
	ID            int64           `db:"id" json:"id"`                         // Primary key, BIGSERIAL in DB
	AccountID     int64           `db:"account_id" json:"account_id"`         // Owning account, required
	CategoryID    *int64          `db:"category_id" json:"category_id"`       // Nullable FK to Category
	CategoryTitle *string         `db:"category_title" json:"category_title"` // Joined on reads
	Description   string          `db:"description" json:"description"`       // Required, max 255 characters
	Amount        decimal.Decimal `db:"amount" json:"amount"`                 // NUMERIC(10, 2) in DB, sign unconstrained
	Type          TransactionType `db:"type" json:"type"`                     // INCOME or EXPENSE
	Date          time.Time       `db:"date" json:"date"`                     // Calendar date, no time component
}

// NewTransaction creates a new Transaction instance. The date is truncated
// to midnight UTC so only the calendar date is kept.
func NewTransaction(accountID int64, categoryID *int64, description string, amount decimal.Decimal, txType TransactionType, date time.Time) *Transaction {
	return &Transaction{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}
}
