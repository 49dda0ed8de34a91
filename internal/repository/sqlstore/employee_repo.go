package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"employee-tracker/internal/domain"
)

const listEmployees = `
SELECT e.id, e.first_name, e.last_name, r.title, d.name AS department, r.salary,
       m.first_name || ' ' || m.last_name AS manager
FROM employee e
LEFT JOIN role r ON e.role_id = r.id
LEFT JOIN department d ON r.department_id = d.id
LEFT JOIN employee m ON e.manager_id = m.id
ORDER BY e.id`

type EmployeeRepo struct {
	db *sqlx.DB
}

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) ListEmployees(ctx context.Context) ([]domain.EmployeeView, error) {
	var employees []domain.EmployeeView
	if err := r.db.SelectContext(ctx, &employees, listEmployees); err != nil {
		return nil, classify("list employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepo) AddEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO employee (first_name, last_name, role_id, manager_id)
		 VALUES (:first_name, :last_name, :role_id, :manager_id) RETURNING id`,
		e)
	if err != nil {
		return 0, classify("add employee", err)
	}
	return id, nil
}

func (r *EmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	res, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE employee SET role_id = ? WHERE id = ?`), roleID, employeeID)
	if err != nil {
		return classify("update employee role", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("update employee role", err)
	}
	if n == 0 {
		return classify("update employee role", sql.ErrNoRows)
	}
	return nil
}
