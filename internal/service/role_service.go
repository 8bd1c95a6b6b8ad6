package service

import (
	"context"
	"fmt"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"
)

// RoleService defines role lifecycle operations.
type RoleService interface {
	GetAllRoles(ctx context.Context) ([]domain.Role, error)
	GetRoleByID(ctx context.Context, id int64) (*domain.Role, error)
	AddRole(ctx context.Context, role *domain.Role) (*domain.Role, error)
	UpdateRole(ctx context.Context, id int64, role *domain.Role) (*domain.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

type roleService struct {
	dbExecutor repository.DBExecutor
	roleRepo   repository.RoleRepository
}

// NewRoleService creates a new instance of RoleService.
func NewRoleService(dbExecutor repository.DBExecutor, roleRepo repository.RoleRepository) RoleService {
	return &roleService{
		dbExecutor: dbExecutor,
		roleRepo:   roleRepo,
	}
}

func validateRole(role *domain.Role) error {
	if role.Name == "" {
		return fmt.Errorf("role name is required: %w", util.ErrInvalidInput)
	}
	if len(role.Name) > domain.MaxRoleNameLen {
		return fmt.Errorf("role name exceeds %d characters: %w", domain.MaxRoleNameLen, util.ErrInvalidInput)
	}
	return nil
}

func (s *roleService) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roleRepo.ListRoles(ctx, s.dbExecutor)
}

func (s *roleService) GetRoleByID(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roleRepo.GetRoleByID(ctx, s.dbExecutor, id)
}

func (s *roleService) AddRole(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if err := validateRole(role); err != nil {
		return nil, err
	}
	if err := s.roleRepo.CreateRole(ctx, s.dbExecutor, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id int64, role *domain.Role) (*domain.Role, error) {
	if err := validateRole(role); err != nil {
		return nil, err
	}
	existing, err := s.roleRepo.GetRoleByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("role %d: %w", id, err)
	}
	existing.Name = role.Name
	if err := s.roleRepo.UpdateRole(ctx, s.dbExecutor, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id int64) error {
	return s.roleRepo.DeleteRole(ctx, s.dbExecutor, id)
}
