package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "budgetd/internal/api"
	"budgetd/internal/api/handler"
	"budgetd/internal/auth"
	"budgetd/internal/config"
	"budgetd/internal/repository"
	"budgetd/internal/repository/postgres"
	"budgetd/internal/service"
	"budgetd/internal/util"
	"budgetd/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	AccountRepository     repository.AccountRepository
	RoleRepository        repository.RoleRepository
	CategoryRepository    repository.CategoryRepository
	TransactionRepository repository.TransactionRepository

	// Services
	AuthService        service.AuthService
	AccountService     service.AccountService
	RoleService        service.RoleService
	CategoryService    service.CategoryService
	TransactionService service.TransactionService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.RunMigrations(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database connection established and schema migrated.")

	// 4. Initialize Repositories
	app.AccountRepository = postgres.NewAccountRepository(app.DB)
	app.RoleRepository = postgres.NewRoleRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	jwtManager := auth.NewJWTManager(app.Config.JWTSecret, app.Config.TokenDuration)
	app.AuthService = service.NewAuthService(app.DB, app.AccountRepository, jwtManager)
	app.AccountService = service.NewAccountService(app.DB, app.AccountRepository, app.RoleRepository)
	app.RoleService = service.NewRoleService(app.DB, app.RoleRepository)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository)
	app.TransactionService = service.NewTransactionService(app.DB, app.TransactionRepository, app.CategoryRepository, app.AccountRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(app.AuthService, app.Logger),
		Account:     handler.NewAccountHandler(app.AccountService, app.Logger),
		Role:        handler.NewRoleHandler(app.RoleService, app.Logger),
		Category:    handler.NewCategoryHandler(app.CategoryService, app.Logger),
		Transaction: handler.NewTransactionHandler(app.TransactionService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, jwtManager, auth.DefaultPolicy(), app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
