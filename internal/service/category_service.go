package service

import (
	"context"
	"fmt"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"
)

// CategoryService defines category lifecycle operations.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	AddCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	dbExecutor   repository.DBExecutor
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(dbExecutor repository.DBExecutor, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		dbExecutor:   dbExecutor,
		categoryRepo: categoryRepo,
	}
}

func validateCategory(category *domain.Category) error {
	if category.Title == "" {
		return fmt.Errorf("category title is required: %w", util.ErrInvalidInput)
	}
	if len(category.Title) > domain.MaxCategoryTitleLen {
		return fmt.Errorf("category title exceeds %d characters: %w", domain.MaxCategoryTitleLen, util.ErrInvalidInput)
	}
	return nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, s.dbExecutor)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, id)
}

func (s *categoryService) AddCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.CreateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	existing, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	existing.Title = category.Title
	if err := s.categoryRepo.UpdateCategory(ctx, s.dbExecutor, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.DeleteCategory(ctx, s.dbExecutor, id)
}
