package repository

import (
	"context"

	"budgetd/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	GetCategoryByID(ctx context.Context, q DBExecutor, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context, q DBExecutor) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	DeleteCategory(ctx context.Context, q DBExecutor, id int64) error
}
