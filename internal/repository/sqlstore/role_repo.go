package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"employee-tracker/internal/domain"
)

type RoleRepo struct {
	db *sqlx.DB
}

func NewRoleRepo(db *sqlx.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := r.db.SelectContext(ctx, &roles,
		`SELECT id, title, salary, department_id FROM role ORDER BY id`)
	if err != nil {
		return nil, classify("list roles", err)
	}
	return roles, nil
}

func (r *RoleRepo) AddRole(ctx context.Context, role domain.Role) (int64, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO role (title, salary, department_id) VALUES (:title, :salary, :department_id) RETURNING id`,
		role)
	if err != nil {
		return 0, classify("add role", err)
	}
	return id, nil
}
