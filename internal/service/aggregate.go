package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"budgetd/internal/domain"
)

// Pure reductions over transaction sets. Nothing in this file touches the
// store; every function is deterministic in its input slice.

// amountScale is the number of fractional digits carried by persisted amounts.
const amountScale = 2

// SumAmounts left-folds the transaction amounts starting from decimal zero.
// Decimal addition is exact and associative, so iteration order does not
// affect the result.
func SumAmounts(transactions []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// AverageAmount returns the arithmetic mean of the transaction amounts,
// rounded to 2 fractional digits half-up (away from zero). An empty input
// yields decimal zero, never an error.
func AverageAmount(transactions []domain.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}
	return SumAmounts(transactions).DivRound(decimal.NewFromInt(int64(len(transactions))), amountScale)
}

// GroupByCategory partitions transactions by their category's title and sums
// amounts within each partition. Keying by title means two categories sharing
// a title merge into one bucket.
//
// Every transaction passed in must have a category: a nil CategoryTitle is a
// contract violation and panics rather than silently dropping the record,
// since dropped records would corrupt financial totals.
func GroupByCategory(transactions []domain.Transaction) map[string]decimal.Decimal {
	buckets := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		title := *tx.CategoryTitle
		buckets[title] = buckets[title].Add(tx.Amount)
	}
	return buckets
}

// GroupByMonthName partitions transactions by the full English month name of
// their date, upper-cased (e.g. "SEPTEMBER"), summing amounts per month.
// Months with no matching transaction produce no key.
func GroupByMonthName(transactions []domain.Transaction) map[string]decimal.Decimal {
	buckets := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		month := strings.ToUpper(tx.Date.Month().String())
		buckets[month] = buckets[month].Add(tx.Amount)
	}
	return buckets
}

// FilterByMonthYear keeps transactions whose date falls in the given calendar
// month of the given year.
func FilterByMonthYear(transactions []domain.Transaction, month time.Month, year int) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.Month() == month && tx.Date.Year() == year {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// FilterByYear keeps transactions whose date falls in the given year.
func FilterByYear(transactions []domain.Transaction, year int) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.Year() == year {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
