package domain

import "context"

type RoleRepo interface {
	ListRoles(ctx context.Context) ([]Role, error)
	AddRole(ctx context.Context, r Role) (int64, error)
}

type Role struct {
	ID           int64   `db:"id"`
	Title        string  `db:"title"`
	Salary       float64 `db:"salary"`
	DepartmentID int64   `db:"department_id"`
}

// RoleTitleMax mirrors the VARCHAR(30) column.
const RoleTitleMax = 30

// SalaryMax is the largest value a DECIMAL(10, 2) salary can hold.
const SalaryMax = 99999999.99
