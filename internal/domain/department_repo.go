package domain

import "context"

type DepartmentRepo interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	AddDepartment(ctx context.Context, d Department) (int64, error)
}

type Department struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// DepartmentNameMax mirrors the VARCHAR(30) column.
const DepartmentNameMax = 30
