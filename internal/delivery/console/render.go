package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"
)

type Renderer struct {
	Out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

func (r *Renderer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		})
	fmt.Fprintln(r.Out, t.Render())
}

func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.Out, SuccessStyle.Render(msg))
}

func (r *Renderer) Warn(msg string) {
	fmt.Fprintln(r.Out, WarningStyle.Render(msg))
}

func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.Out, ErrorStyle.Render(fmt.Sprintf("Error (%s): %v", apperror.GetCode(err), err)))
}

func (r *Renderer) Employees(employees []domain.EmployeeView) {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		salary := ""
		if e.Salary.Valid {
			salary = formatSalary(e.Salary.Float64)
		}
		rows = append(rows, []string{
			formatID(e.ID),
			e.FirstName,
			e.LastName,
			e.Title.String,
			e.Department.String,
			salary,
			e.Manager.String,
		})
	}
	r.Table([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
}

func (r *Renderer) Roles(roles []domain.Role) {
	rows := make([][]string, 0, len(roles))
	for _, role := range roles {
		rows = append(rows, []string{
			formatID(role.ID),
			role.Title,
			formatSalary(role.Salary),
			formatID(role.DepartmentID),
		})
	}
	r.Table([]string{"id", "title", "salary", "department_id"}, rows)
}

func (r *Renderer) Departments(departments []domain.Department) {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{formatID(d.ID), d.Name})
	}
	r.Table([]string{"id", "name"}, rows)
}

func formatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
