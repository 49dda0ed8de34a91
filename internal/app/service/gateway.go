package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"
)

// Gateway is the fixed set of read and write operations the console uses.
// Each call is one statement, executed on the worker pool while the caller waits.
type Gateway struct {
	Departments domain.DepartmentRepo
	Roles       domain.RoleRepo
	Employees   domain.EmployeeRepo
	Async       *AsyncService
}

func NewGateway(d domain.DepartmentRepo, r domain.RoleRepo, e domain.EmployeeRepo, async *AsyncService) *Gateway {
	return &Gateway{Departments: d, Roles: r, Employees: e, Async: async}
}

func (g *Gateway) ListEmployees(ctx context.Context) ([]domain.EmployeeView, error) {
	return Await(ctx, g.Async, g.Employees.ListEmployees)
}

func (g *Gateway) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return Await(ctx, g.Async, g.Roles.ListRoles)
}

func (g *Gateway) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return Await(ctx, g.Async, g.Departments.ListDepartments)
}

func (g *Gateway) AddDepartment(ctx context.Context, d domain.Department) (int64, error) {
	d.Name = strings.TrimSpace(d.Name)
	if err := checkText("department name", d.Name, domain.DepartmentNameMax); err != nil {
		return 0, err
	}
	return Await(ctx, g.Async, func(ctx context.Context) (int64, error) {
		return g.Departments.AddDepartment(ctx, d)
	})
}

func (g *Gateway) AddRole(ctx context.Context, r domain.Role) (int64, error) {
	r.Title = strings.TrimSpace(r.Title)
	if err := checkText("role title", r.Title, domain.RoleTitleMax); err != nil {
		return 0, err
	}
	if err := checkSalary(r.Salary); err != nil {
		return 0, err
	}
	return Await(ctx, g.Async, func(ctx context.Context) (int64, error) {
		return g.Roles.AddRole(ctx, r)
	})
}

func (g *Gateway) AddEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	if err := checkText("first name", e.FirstName, domain.EmployeeNameMax); err != nil {
		return 0, err
	}
	if err := checkText("last name", e.LastName, domain.EmployeeNameMax); err != nil {
		return 0, err
	}
	return Await(ctx, g.Async, func(ctx context.Context) (int64, error) {
		return g.Employees.AddEmployee(ctx, e)
	})
}

func (g *Gateway) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	_, err := Await(ctx, g.Async, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.Employees.UpdateEmployeeRole(ctx, employeeID, roleID)
	})
	return err
}

// ParseSalary accepts plain or comma-grouped numbers ("80000", "80,000.50").
func ParseSalary(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperror.New(apperror.CodeValidation, "salary must be a non-negative number")
	}
	if err := checkSalary(v); err != nil {
		return 0, err
	}
	return v, nil
}

// RequireText rejects blank input and input longer than limit characters.
func RequireText(field string, limit int) func(string) error {
	return func(s string) error {
		return checkText(field, strings.TrimSpace(s), limit)
	}
}

func checkText(field, s string, limit int) error {
	if s == "" {
		return apperror.New(apperror.CodeValidation, field+" is required")
	}
	if utf8.RuneCountInString(s) > limit {
		return apperror.New(apperror.CodeValidation,
			fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

// checkSalary keeps salaries inside the DECIMAL(10, 2) column range.
func checkSalary(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return apperror.New(apperror.CodeValidation, "salary must be a non-negative number")
	}
	if v > domain.SalaryMax {
		return apperror.New(apperror.CodeValidation,
			fmt.Sprintf("salary must be at most %s", strconv.FormatFloat(domain.SalaryMax, 'f', 2, 64)))
	}
	return nil
}
