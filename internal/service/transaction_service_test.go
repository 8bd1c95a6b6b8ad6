package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budgetd/internal/domain"
	"budgetd/internal/util"
)

func newTransactionService(txRepo *MockTransactionRepository, catRepo *MockCategoryRepository, accRepo *MockAccountRepository) TransactionService {
	return NewTransactionService(nil, txRepo, catRepo, accRepo)
}

func incomeTx(amount string, d time.Time) domain.Transaction {
	return domain.Transaction{
		Amount: decimal.RequireFromString(amount),
		Type:   domain.TransactionTypeIncome,
		Date:   d,
	}
}

func TestGetBalance(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	incomes := []domain.Transaction{
		incomeTx("1000.00", date(2025, time.September, 1)),
		incomeTx("500.00", date(2025, time.September, 2)),
	}
	expenses := []domain.Transaction{
		{Amount: decimal.RequireFromString("300.00"), Type: domain.TransactionTypeExpense},
	}
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeIncome).Return(incomes, nil)
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeExpense).Return(expenses, nil)

	balance, err := svc.GetBalance(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "1200.00", balance.StringFixed(2))

	// The identity totalIncome - totalExpense == balance must hold.
	income, err := svc.GetTotalIncome(ctx, 1)
	require.NoError(t, err)
	expense, err := svc.GetTotalExpense(ctx, 1)
	require.NoError(t, err)
	assert.True(t, income.Sub(expense).Equal(balance))
}

func TestGetBalanceBetweenDates(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()
	start, end := date(2025, time.January, 1), date(2025, time.December, 31)

	txRepo.On("FindByAccountTypeAndDateRange", ctx, nil, int64(7), domain.TransactionTypeIncome, start, end).
		Return([]domain.Transaction{incomeTx("10.50", start)}, nil)
	txRepo.On("FindByAccountTypeAndDateRange", ctx, nil, int64(7), domain.TransactionTypeExpense, start, end).
		Return([]domain.Transaction{}, nil)

	balance, err := svc.GetBalanceBetweenDates(ctx, 7, start, end)

	require.NoError(t, err)
	assert.Equal(t, "10.50", balance.StringFixed(2))
}

func TestGetTransactionsByMonth_CalendarBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		month      time.Month
		year       int
		wantedLast int
	}{
		{"september has 30 days", time.September, 2025, 30},
		{"january has 31 days", time.January, 2025, 31},
		{"february common year", time.February, 2025, 28},
		{"february leap year", time.February, 2024, 29},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txRepo := new(MockTransactionRepository)
			svc := newTransactionService(txRepo, nil, nil)
			ctx := context.Background()

			wantStart := date(tc.year, tc.month, 1)
			wantEnd := date(tc.year, tc.month, tc.wantedLast)
			txRepo.On("FindByAccountAndDateRange", ctx, nil, int64(1), wantStart, wantEnd).
				Return([]domain.Transaction{}, nil)

			_, err := svc.GetTransactionsByMonth(ctx, 1, tc.month, tc.year)

			require.NoError(t, err)
			txRepo.AssertExpectations(t)
		})
	}
}

func TestGetAverageIncomeByMonth(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	// Mixed years: only the September 2025 entries count.
	all := []domain.Transaction{
		incomeTx("100.00", date(2025, time.September, 1)),
		incomeTx("200.00", date(2025, time.September, 10)),
		incomeTx("233.33", date(2025, time.September, 20)),
		incomeTx("9999.00", date(2024, time.September, 1)),
		incomeTx("9999.00", date(2025, time.August, 1)),
	}
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeIncome).Return(all, nil)

	avg, err := svc.GetAverageIncomeByMonth(ctx, 1, time.September, 2025)

	require.NoError(t, err)
	assert.Equal(t, "177.78", avg.StringFixed(2))
	// The month filter happens in memory over the full per-type list; no
	// date-ranged store query may be issued.
	txRepo.AssertNotCalled(t, "FindByAccountTypeAndDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAverageIncomeByMonth_NoMatchesIsZero(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	all := []domain.Transaction{
		incomeTx("1000.00", date(2024, time.September, 1)),
		incomeTx("1500.00", date(2026, time.September, 1)),
	}
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeIncome).Return(all, nil)

	avg, err := svc.GetAverageIncomeByMonth(ctx, 1, time.September, 2025)

	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestGetExpenseByCategory(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	food, transport := "Food", "Transport"
	expenses := []domain.Transaction{
		{Amount: decimal.RequireFromString("100.00"), CategoryTitle: &food},
		{Amount: decimal.RequireFromString("50.00"), CategoryTitle: &food},
		{Amount: decimal.RequireFromString("30.00"), CategoryTitle: &transport},
	}
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeExpense).Return(expenses, nil)

	buckets, err := svc.GetExpenseByCategory(ctx, 1)

	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "150.00", buckets["Food"].StringFixed(2))
	assert.Equal(t, "30.00", buckets["Transport"].StringFixed(2))
}

func TestGetMonthlyExpenses(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	expenses := []domain.Transaction{
		{Amount: decimal.RequireFromString("10.00"), Date: date(2025, time.September, 1)},
		{Amount: decimal.RequireFromString("15.00"), Date: date(2025, time.September, 20)},
		{Amount: decimal.RequireFromString("7.00"), Date: date(2025, time.October, 3)},
		{Amount: decimal.RequireFromString("99.00"), Date: date(2024, time.May, 3)}, // wrong year
	}
	txRepo.On("FindByAccountAndType", ctx, nil, int64(1), domain.TransactionTypeExpense).Return(expenses, nil)

	buckets, err := svc.GetMonthlyExpenses(ctx, 1, 2025)

	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "25.00", buckets["SEPTEMBER"].StringFixed(2))
	assert.Equal(t, "7.00", buckets["OCTOBER"].StringFixed(2))
}

func TestAddTransaction_Validation(t *testing.T) {
	cases := []struct {
		name string
		tx   domain.Transaction
	}{
		{"missing account", domain.Transaction{Description: "x", Amount: decimal.New(1, 0), Type: domain.TransactionTypeIncome, Date: date(2025, 1, 1)}},
		{"blank description", domain.Transaction{AccountID: 1, Amount: decimal.New(1, 0), Type: domain.TransactionTypeIncome, Date: date(2025, 1, 1)}},
		{"over-length description", domain.Transaction{AccountID: 1, Description: strings.Repeat("x", 256), Amount: decimal.New(1, 0), Type: domain.TransactionTypeIncome, Date: date(2025, 1, 1)}},
		{"invalid type", domain.Transaction{AccountID: 1, Description: "x", Amount: decimal.New(1, 0), Type: "TRANSFER", Date: date(2025, 1, 1)}},
		{"missing date", domain.Transaction{AccountID: 1, Description: "x", Amount: decimal.New(1, 0), Type: domain.TransactionTypeIncome}},
		{"three fractional digits", domain.Transaction{AccountID: 1, Description: "x", Amount: decimal.RequireFromString("10.123"), Type: domain.TransactionTypeIncome, Date: date(2025, 1, 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txRepo := new(MockTransactionRepository)
			svc := newTransactionService(txRepo, new(MockCategoryRepository), new(MockAccountRepository))

			_, err := svc.AddTransaction(context.Background(), &tc.tx)

			assert.ErrorIs(t, err, util.ErrInvalidInput)
			txRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAddTransaction_NegativeAmountAllowed(t *testing.T) {
	// The type field, not the sign, classifies income vs expense.
	txRepo := new(MockTransactionRepository)
	catRepo := new(MockCategoryRepository)
	accRepo := new(MockAccountRepository)
	svc := newTransactionService(txRepo, catRepo, accRepo)
	ctx := context.Background()

	accRepo.On("GetAccountByID", ctx, nil, int64(1)).Return(&domain.Account{ID: 1}, nil)
	txRepo.On("CreateTransaction", ctx, nil, mock.Anything).Return(nil)

	transaction := &domain.Transaction{
		AccountID:   1,
		Description: "refund",
		Amount:      decimal.RequireFromString("-25.00"),
		Type:        domain.TransactionTypeExpense,
		Date:        date(2025, time.March, 3),
	}
	_, err := svc.AddTransaction(ctx, transaction)

	require.NoError(t, err)
	txRepo.AssertExpectations(t)
}

func TestAddTransaction_DanglingReferences(t *testing.T) {
	t.Run("account missing", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		accRepo := new(MockAccountRepository)
		svc := newTransactionService(txRepo, new(MockCategoryRepository), accRepo)
		ctx := context.Background()

		accRepo.On("GetAccountByID", ctx, nil, int64(99)).Return(nil, util.ErrNotFound)

		transaction := &domain.Transaction{
			AccountID:   99,
			Description: "x",
			Amount:      decimal.New(1, 0),
			Type:        domain.TransactionTypeIncome,
			Date:        date(2025, 1, 1),
		}
		_, err := svc.AddTransaction(ctx, transaction)

		assert.ErrorIs(t, err, util.ErrReferenceNotFound)
	})

	t.Run("category missing", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		catRepo := new(MockCategoryRepository)
		accRepo := new(MockAccountRepository)
		svc := newTransactionService(txRepo, catRepo, accRepo)
		ctx := context.Background()

		accRepo.On("GetAccountByID", ctx, nil, int64(1)).Return(&domain.Account{ID: 1}, nil)
		catRepo.On("GetCategoryByID", ctx, nil, int64(42)).Return(nil, util.ErrNotFound)

		categoryID := int64(42)
		transaction := &domain.Transaction{
			AccountID:   1,
			CategoryID:  &categoryID,
			Description: "x",
			Amount:      decimal.New(1, 0),
			Type:        domain.TransactionTypeIncome,
			Date:        date(2025, 1, 1),
		}
		_, err := svc.AddTransaction(ctx, transaction)

		assert.ErrorIs(t, err, util.ErrReferenceNotFound)
		txRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, new(MockCategoryRepository), new(MockAccountRepository))
	ctx := context.Background()

	txRepo.On("GetTransactionByID", ctx, nil, int64(5)).Return(nil, util.ErrNotFound)

	transaction := &domain.Transaction{
		AccountID:   1,
		Description: "x",
		Amount:      decimal.New(1, 0),
		Type:        domain.TransactionTypeIncome,
		Date:        date(2025, 1, 1),
	}
	_, err := svc.UpdateTransaction(ctx, 5, transaction)

	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestDeleteAllTransactions(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	svc := newTransactionService(txRepo, nil, nil)
	ctx := context.Background()

	txRepo.On("DeleteByAccount", ctx, nil, int64(3)).Return(nil)

	require.NoError(t, svc.DeleteAllTransactions(ctx, 3))
	txRepo.AssertExpectations(t)
}
