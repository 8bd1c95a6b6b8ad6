package repository

import (
	"context"

	"budgetd/internal/domain"
)

// RoleRepository defines the interface for role data operations.
type RoleRepository interface {
	CreateRole(ctx context.Context, q DBExecutor, role *domain.Role) error
	GetRoleByID(ctx context.Context, q DBExecutor, id int64) (*domain.Role, error)
	ListRoles(ctx context.Context, q DBExecutor) ([]domain.Role, error)
	UpdateRole(ctx context.Context, q DBExecutor, role *domain.Role) error
	DeleteRole(ctx context.Context, q DBExecutor, id int64) error
}
