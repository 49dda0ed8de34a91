package console

import (
	"context"
	"io"
	"log/slog"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/console/router"
	"employee-tracker/internal/domain"
)

const (
	ActionViewEmployees   = "View all employees"
	ActionAddEmployee     = "Add employee"
	ActionUpdateRole      = "Update employee role"
	ActionViewRoles       = "View all roles"
	ActionAddRole         = "Add role"
	ActionViewDepartments = "View all departments"
	ActionAddDepartment   = "Add department"
	ActionQuit            = "Quit"
)

// Gateway is the set of queries the handlers need.
type Gateway interface {
	ListEmployees(ctx context.Context) ([]domain.EmployeeView, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	AddDepartment(ctx context.Context, d domain.Department) (int64, error)
	AddRole(ctx context.Context, r domain.Role) (int64, error)
	AddEmployee(ctx context.Context, e domain.Employee) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
}

type Handler struct {
	Gateway Gateway
	Prompt  Prompter
	Out     *Renderer
	// Closer is closed on Quit; normally the database store.
	Closer io.Closer
}

// Register wires every menu action, in menu order.
func (h *Handler) Register(r *router.Router) {
	r.Register(ActionViewEmployees, h.viewAllEmployees)
	r.Register(ActionAddEmployee, h.addEmployee)
	r.Register(ActionUpdateRole, h.updateEmployeeRole)
	r.Register(ActionViewRoles, h.viewAllRoles)
	r.Register(ActionAddRole, h.addRole)
	r.Register(ActionViewDepartments, h.viewAllDepartments)
	r.Register(ActionAddDepartment, h.addDepartment)
	r.Register(ActionQuit, h.quit)
}

func (h *Handler) ViewAllEmployees(ctx context.Context) error {
	employees, err := h.Gateway.ListEmployees(ctx)
	if err != nil {
		return err
	}
	h.Out.Employees(employees)
	return nil
}

func (h *Handler) ViewAllRoles(ctx context.Context) error {
	roles, err := h.Gateway.ListRoles(ctx)
	if err != nil {
		return err
	}
	h.Out.Roles(roles)
	return nil
}

func (h *Handler) ViewAllDepartments(ctx context.Context) error {
	departments, err := h.Gateway.ListDepartments(ctx)
	if err != nil {
		return err
	}
	h.Out.Departments(departments)
	return nil
}

func (h *Handler) viewAllEmployees(ctx context.Context) (router.Outcome, error) {
	return router.Continue, h.ViewAllEmployees(ctx)
}

func (h *Handler) viewAllRoles(ctx context.Context) (router.Outcome, error) {
	return router.Continue, h.ViewAllRoles(ctx)
}

func (h *Handler) viewAllDepartments(ctx context.Context) (router.Outcome, error) {
	return router.Continue, h.ViewAllDepartments(ctx)
}

func (h *Handler) addDepartment(ctx context.Context) (router.Outcome, error) {
	name, err := h.Prompt.Input(ctx, "Enter the department name:", service.RequireText("department name", domain.DepartmentNameMax))
	if err != nil {
		return router.Continue, err
	}

	id, err := h.Gateway.AddDepartment(ctx, domain.Department{Name: name})
	if err != nil {
		return router.Continue, err
	}
	slog.Debug("department added", "id", id)
	h.Out.Success("Department added successfully!")
	return router.Continue, nil
}

func (h *Handler) addRole(ctx context.Context) (router.Outcome, error) {
	departments, err := h.Gateway.ListDepartments(ctx)
	if err != nil {
		return router.Continue, err
	}
	if len(departments) == 0 {
		h.Out.Warn("There are no departments yet. Add a department first.")
		return router.Continue, nil
	}

	title, err := h.Prompt.Input(ctx, "Enter the role title:", service.RequireText("role title", domain.RoleTitleMax))
	if err != nil {
		return router.Continue, err
	}
	rawSalary, err := h.Prompt.Input(ctx, "Enter the role salary:", func(s string) error {
		_, err := service.ParseSalary(s)
		return err
	})
	if err != nil {
		return router.Continue, err
	}
	salary, err := service.ParseSalary(rawSalary)
	if err != nil {
		return router.Continue, err
	}
	picked, err := h.Prompt.Select(ctx, "Select the department for this role:", DepartmentChoices(departments))
	if err != nil {
		return router.Continue, err
	}
	departmentID, err := parseID(picked)
	if err != nil {
		return router.Continue, err
	}

	id, err := h.Gateway.AddRole(ctx, domain.Role{Title: title, Salary: salary, DepartmentID: departmentID})
	if err != nil {
		return router.Continue, err
	}
	slog.Debug("role added", "id", id)
	h.Out.Success("Role added successfully!")
	return router.Continue, nil
}

func (h *Handler) addEmployee(ctx context.Context) (router.Outcome, error) {
	roles, err := h.Gateway.ListRoles(ctx)
	if err != nil {
		return router.Continue, err
	}
	employees, err := h.Gateway.ListEmployees(ctx)
	if err != nil {
		return router.Continue, err
	}
	if len(roles) == 0 {
		h.Out.Warn("There are no roles yet. Add a role first.")
		return router.Continue, nil
	}

	first, err := h.Prompt.Input(ctx, "Enter the employee's first name:", service.RequireText("first name", domain.EmployeeNameMax))
	if err != nil {
		return router.Continue, err
	}
	last, err := h.Prompt.Input(ctx, "Enter the employee's last name:", service.RequireText("last name", domain.EmployeeNameMax))
	if err != nil {
		return router.Continue, err
	}
	pickedRole, err := h.Prompt.Select(ctx, "Select the employee's role:", RoleChoices(roles))
	if err != nil {
		return router.Continue, err
	}
	pickedManager, err := h.Prompt.Select(ctx, "Who is the employee's manager?", EmployeeChoices(employees, true))
	if err != nil {
		return router.Continue, err
	}

	roleID, err := parseID(pickedRole)
	if err != nil {
		return router.Continue, err
	}
	managerID, err := parseOptionalID(pickedManager)
	if err != nil {
		return router.Continue, err
	}

	id, err := h.Gateway.AddEmployee(ctx, domain.Employee{
		FirstName: first,
		LastName:  last,
		RoleID:    &roleID,
		ManagerID: managerID,
	})
	if err != nil {
		return router.Continue, err
	}
	slog.Debug("employee added", "id", id)
	h.Out.Success("Employee added successfully!")
	return router.Continue, nil
}

func (h *Handler) updateEmployeeRole(ctx context.Context) (router.Outcome, error) {
	employees, err := h.Gateway.ListEmployees(ctx)
	if err != nil {
		return router.Continue, err
	}
	roles, err := h.Gateway.ListRoles(ctx)
	if err != nil {
		return router.Continue, err
	}
	if len(employees) == 0 || len(roles) == 0 {
		h.Out.Warn("Nothing to update: add at least one employee and one role first.")
		return router.Continue, nil
	}

	pickedEmployee, err := h.Prompt.Select(ctx, "Which employee's role do you want to update?", EmployeeChoices(employees, false))
	if err != nil {
		return router.Continue, err
	}
	pickedRole, err := h.Prompt.Select(ctx, "Which role do you want to assign to the selected employee?", RoleChoices(roles))
	if err != nil {
		return router.Continue, err
	}

	employeeID, err := parseID(pickedEmployee)
	if err != nil {
		return router.Continue, err
	}
	roleID, err := parseID(pickedRole)
	if err != nil {
		return router.Continue, err
	}

	if err := h.Gateway.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		return router.Continue, err
	}
	h.Out.Success("Employee role updated successfully!")
	return router.Continue, nil
}

func (h *Handler) quit(ctx context.Context) (router.Outcome, error) {
	if h.Closer != nil {
		if err := h.Closer.Close(); err != nil {
			return router.Stop, err
		}
	}
	return router.Stop, nil
}
