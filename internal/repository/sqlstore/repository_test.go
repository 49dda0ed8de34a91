package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"
)

func TestAddDepartmentReturnsNovelID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := store.Departments()

	first, err := repo.AddDepartment(ctx, domain.Department{Name: "Engineering"})
	require.NoError(t, err)
	second, err := repo.AddDepartment(ctx, domain.Department{Name: "Support"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	departments, err := repo.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Department{
		{ID: first, Name: "Engineering"},
		{ID: second, Name: "Support"},
	}, departments)
}

func TestAddDepartmentDuplicateIsConflict(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Departments().AddDepartment(ctx, domain.Department{Name: "Sales"})
	require.NoError(t, err)
	_, err = store.Departments().AddDepartment(ctx, domain.Department{Name: "Sales"})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
}

func TestAddRoleRequiresExistingDepartment(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Roles().AddRole(context.Background(), domain.Role{Title: "Orphan", Salary: 1, DepartmentID: 42})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
}

func TestListEmptyTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	roles, err := store.Roles().ListRoles(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)

	employees, err := store.Employees().ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestListEmployeesJoins(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	deptID, err := store.Departments().AddDepartment(ctx, domain.Department{Name: "Engineering"})
	require.NoError(t, err)
	roleID, err := store.Roles().AddRole(ctx, domain.Role{Title: "Engineer", Salary: 80000, DepartmentID: deptID})
	require.NoError(t, err)

	adaID, err := store.Employees().AddEmployee(ctx, domain.Employee{FirstName: "Ada", LastName: "Lovelace", RoleID: ptr(roleID)})
	require.NoError(t, err)
	_, err = store.Employees().AddEmployee(ctx, domain.Employee{FirstName: "Charles", LastName: "Babbage", RoleID: ptr(roleID), ManagerID: ptr(adaID)})
	require.NoError(t, err)
	_, err = store.Employees().AddEmployee(ctx, domain.Employee{FirstName: "No", LastName: "Role"})
	require.NoError(t, err)

	employees, err := store.Employees().ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	ada := employees[0]
	assert.Equal(t, "Ada Lovelace", ada.FullName())
	assert.Equal(t, "Engineer", ada.Title.String)
	assert.Equal(t, "Engineering", ada.Department.String)
	assert.Equal(t, 80000.0, ada.Salary.Float64)
	assert.False(t, ada.Manager.Valid)

	assert.Equal(t, "Ada Lovelace", employees[1].Manager.String)

	noRole := employees[2]
	assert.False(t, noRole.Title.Valid)
	assert.False(t, noRole.Department.Valid)
	assert.False(t, noRole.Salary.Valid)
}

func TestUpdateEmployeeRole(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	deptID, err := store.Departments().AddDepartment(ctx, domain.Department{Name: "Legal"})
	require.NoError(t, err)
	clerk, err := store.Roles().AddRole(ctx, domain.Role{Title: "Clerk", Salary: 50000, DepartmentID: deptID})
	require.NoError(t, err)
	lawyer, err := store.Roles().AddRole(ctx, domain.Role{Title: "Lawyer", Salary: 190000, DepartmentID: deptID})
	require.NoError(t, err)
	empID, err := store.Employees().AddEmployee(ctx, domain.Employee{FirstName: "Tom", LastName: "Allen", RoleID: ptr(clerk)})
	require.NoError(t, err)

	// applying the same pair twice leaves the same result
	for i := 0; i < 2; i++ {
		require.NoError(t, store.Employees().UpdateEmployeeRole(ctx, empID, lawyer))
	}

	employees, err := store.Employees().ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Lawyer", employees[0].Title.String)
	assert.Equal(t, 190000.0, employees[0].Salary.Float64)

	err = store.Employees().UpdateEmployeeRole(ctx, 999, lawyer)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))

	err = store.Employees().UpdateEmployeeRole(ctx, empID, 999)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
}

func TestCloseIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
