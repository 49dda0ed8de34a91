package console

import (
	"bytes"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"
)

func rowContaining(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	require.Failf(t, "row not found", "no line containing %q in:\n%s", needle, out)
	return ""
}

func TestRenderEmployeesBlankManager(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Employees([]domain.EmployeeView{
		{
			ID:         1,
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Title:      sql.NullString{String: "Engineer", Valid: true},
			Department: sql.NullString{String: "Engineering", Valid: true},
			Salary:     sql.NullFloat64{Float64: 80000, Valid: true},
		},
		{
			ID:        2,
			FirstName: "No",
			LastName:  "Role",
			Manager:   sql.NullString{String: "Ada Lovelace", Valid: true},
		},
	})
	out := buf.String()

	assert.Contains(t, out, "first_name")
	assert.Contains(t, out, "manager")

	ada := rowContaining(t, out, "Lovelace")
	for _, cell := range []string{"Ada", "Engineer", "Engineering", "80000"} {
		assert.Contains(t, ada, cell)
	}
	assert.NotContains(t, ada, "NULL")

	noRole := rowContaining(t, out, "Role")
	assert.Contains(t, noRole, "Ada Lovelace")
	assert.NotContains(t, noRole, "Engineer")
}

func TestRenderRolesAndDepartments(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Roles([]domain.Role{{ID: 3, Title: "Accountant", Salary: 125000.5, DepartmentID: 2}})
	r.Departments([]domain.Department{{ID: 2, Name: "Finance"}})

	out := buf.String()
	assert.Contains(t, rowContaining(t, out, "Accountant"), "125000.5")
	assert.Contains(t, out, "department_id")
	assert.Contains(t, rowContaining(t, out, "Finance"), "2")
}

func TestRenderEmptyTableHasHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Departments(nil)

	assert.Contains(t, buf.String(), "name")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Error(apperror.New(apperror.CodeNotFound, "update employee role"))
	r.Error(errors.New("driver: bad connection"))

	out := buf.String()
	assert.Contains(t, out, "Error (not_found): update employee role")
	assert.Contains(t, out, "Error (internal): driver: bad connection")
}

func TestChoices(t *testing.T) {
	departments := DepartmentChoices([]domain.Department{{ID: 1, Name: "Sales"}, {ID: 2, Name: "Legal"}})
	assert.Equal(t, []Choice{{Label: "Sales", Value: "1"}, {Label: "Legal", Value: "2"}}, departments)

	roles := RoleChoices([]domain.Role{{ID: 5, Title: "Lawyer"}})
	assert.Equal(t, []Choice{{Label: "Lawyer", Value: "5"}}, roles)

	employees := []domain.EmployeeView{{ID: 9, FirstName: "Tom", LastName: "Allen"}}
	assert.Equal(t, []Choice{{Label: "Tom Allen", Value: "9"}}, EmployeeChoices(employees, false))
	assert.Equal(t, []Choice{
		{Label: "Tom Allen", Value: "9"},
		{Label: "None", Value: ""},
	}, EmployeeChoices(employees, true))
}

func TestParseOptionalID(t *testing.T) {
	id, err := parseOptionalID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseOptionalID("12")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(12), *id)

	_, err = parseOptionalID("twelve")
	assert.Error(t, err)
}
