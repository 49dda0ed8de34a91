package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"employee-tracker/internal/domain"
)

type DepartmentRepo struct {
	db *sqlx.DB
}

func NewDepartmentRepo(db *sqlx.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

func (r *DepartmentRepo) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	if err := r.db.SelectContext(ctx, &departments, `SELECT id, name FROM department ORDER BY id`); err != nil {
		return nil, classify("list departments", err)
	}
	return departments, nil
}

func (r *DepartmentRepo) AddDepartment(ctx context.Context, d domain.Department) (int64, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO department (name) VALUES (:name) RETURNING id`, d)
	if err != nil {
		return 0, classify("add department", err)
	}
	return id, nil
}
