package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"budgetd/internal/api/handler"
	"budgetd/internal/api/middleware"
	"budgetd/internal/auth"
	"budgetd/internal/metrics"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Account     *handler.AccountHandler
	Role        *handler.RoleHandler
	Category    *handler.CategoryHandler
	Transaction *handler.TransactionHandler
}

// NewRouter sets up and returns a new HTTP router. Authorization follows the
// policy table: every route group declares its operation category once and
// the middleware decides admission from the caller's role claim.
func NewRouter(h Handlers, jwtManager *auth.JWTManager, policy auth.Policy, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))
	r.Use(metrics.Middleware)

	// Unauthenticated endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Post("/auth/login", h.Auth.Login)

	// Transactions: lifecycle plus aggregation queries, open to all
	// authenticated roles.
	r.Route("/transactions", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtManager))
		r.Use(middleware.Require(policy, auth.OpTransactions))

		r.Get("/", h.Transaction.List)
		r.Post("/", h.Transaction.Add)
		r.Get("/{transactionID}", h.Transaction.Get)
		r.Put("/{transactionID}", h.Transaction.Update)
		r.Delete("/{transactionID}", h.Transaction.Delete)

		r.Route("/account/{accountID}", func(r chi.Router) {
			r.Get("/", h.Transaction.ByAccount)
			r.Delete("/", h.Transaction.DeleteAllForAccount)
			r.Get("/total-income", h.Transaction.TotalIncome)
			r.Get("/total-expense", h.Transaction.TotalExpense)
			r.Get("/balance", h.Transaction.Balance)
			r.Get("/by-month/{year}/{month}", h.Transaction.ByMonth)
			r.Get("/between-dates", h.Transaction.BetweenDates)
			r.Get("/total-income-between", h.Transaction.TotalIncomeBetweenDates)
			r.Get("/total-expense-between", h.Transaction.TotalExpenseBetweenDates)
			r.Get("/balance-between", h.Transaction.BalanceBetweenDates)
			r.Get("/expense-by-category", h.Transaction.ExpenseByCategory)
			r.Get("/income-by-category", h.Transaction.IncomeByCategory)
			r.Get("/average-expense/{year}/{month}", h.Transaction.AverageExpenseByMonth)
			r.Get("/average-income/{year}/{month}", h.Transaction.AverageIncomeByMonth)
			r.Get("/monthly-expenses/{year}", h.Transaction.MonthlyExpenses)
			r.Get("/monthly-incomes/{year}", h.Transaction.MonthlyIncomes)
			r.Get("/category/{categoryID}", h.Transaction.ByCategoryAndDates)
		})
	})

	// Categories: reading and adding is open to all authenticated roles;
	// mutation of existing categories is administrative.
	r.Route("/categories", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtManager))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(policy, auth.OpCategoryRead))
			r.Get("/", h.Category.List)
			r.Get("/{categoryID}", h.Category.Get)
			r.Post("/", h.Category.Add)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(policy, auth.OpEntityAdmin))
			r.Put("/{categoryID}", h.Category.Update)
			r.Delete("/{categoryID}", h.Category.Delete)
		})
	})

	// Accounts and roles: administrative entity management.
	r.Route("/accounts", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtManager))
		r.Use(middleware.Require(policy, auth.OpEntityAdmin))

		r.Get("/", h.Account.List)
		r.Post("/", h.Account.Add)
		r.Get("/{accountID}", h.Account.Get)
		r.Put("/{accountID}", h.Account.Update)
		r.Delete("/{accountID}", h.Account.Delete)
	})

	r.Route("/roles", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtManager))
		r.Use(middleware.Require(policy, auth.OpEntityAdmin))

		r.Get("/", h.Role.List)
		r.Post("/", h.Role.Add)
		r.Get("/{roleID}", h.Role.Get)
		r.Put("/{roleID}", h.Role.Update)
		r.Delete("/{roleID}", h.Role.Delete)
	})

	return r
}
