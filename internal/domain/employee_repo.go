package domain

import (
	"context"
	"database/sql"
)

type EmployeeRepo interface {
	ListEmployees(ctx context.Context) ([]EmployeeView, error)
	AddEmployee(ctx context.Context, e Employee) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
}

type Employee struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	RoleID    *int64 `db:"role_id"`
	ManagerID *int64 `db:"manager_id"`
}

// EmployeeNameMax mirrors the VARCHAR(30) first_name and last_name columns.
const EmployeeNameMax = 30

// EmployeeView is one row of the employee listing. Role, department and
// manager come from left joins and may be missing.
type EmployeeView struct {
	ID         int64           `db:"id"`
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Title      sql.NullString  `db:"title"`
	Department sql.NullString  `db:"department"`
	Salary     sql.NullFloat64 `db:"salary"`
	Manager    sql.NullString  `db:"manager"`
}

func (e EmployeeView) FullName() string {
	return e.FirstName + " " + e.LastName
}
