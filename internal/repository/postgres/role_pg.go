package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"budgetd/internal/domain"
	"budgetd/internal/repository"
	"budgetd/internal/util"

	"github.com/jmoiron/sqlx"
)

// RoleRepository implements repository.RoleRepository for PostgreSQL.
type RoleRepository struct{}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *sqlx.DB) repository.RoleRepository {
	return &RoleRepository{}
}

// CreateRole inserts a new role using the provided DBExecutor.
func (r *RoleRepository) CreateRole(ctx context.Context, q repository.DBExecutor, role *domain.Role) error {
	query := `INSERT INTO roles (name) VALUES ($1) RETURNING id`
	if err := q.QueryRowContext(ctx, query, role.Name).Scan(&role.ID); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

// GetRoleByID retrieves a role by its id using the provided DBExecutor.
func (r *RoleRepository) GetRoleByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Role, error) {
	var role domain.Role
	err := q.GetContext(ctx, &role, `SELECT id, name FROM roles WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role by ID %d: %w", id, err)
	}
	return &role, nil
}

// ListRoles retrieves all roles using the provided DBExecutor.
func (r *RoleRepository) ListRoles(ctx context.Context, q repository.DBExecutor) ([]domain.Role, error) {
	roles := []domain.Role{}
	if err := q.SelectContext(ctx, &roles, `SELECT id, name FROM roles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// UpdateRole overwrites the stored role identified by role.ID.
func (r *RoleRepository) UpdateRole(ctx context.Context, q repository.DBExecutor, role *domain.Role) error {
	result, err := q.ExecContext(ctx, `UPDATE roles SET name = $1 WHERE id = $2`, role.Name, role.ID)
	if err != nil {
		return fmt.Errorf("failed to update role %d: %w", role.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating role %d: %w", role.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteRole removes a role by id using the provided DBExecutor.
func (r *RoleRepository) DeleteRole(ctx context.Context, q repository.DBExecutor, id int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete role %d: %w", id, err)
	}
	return nil
}
