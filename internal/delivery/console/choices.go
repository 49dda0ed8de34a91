package console

import (
	"fmt"
	"strconv"

	"employee-tracker/internal/domain"
)

// noneValue is the manager choice meaning "no manager".
const noneValue = ""

func DepartmentChoices(departments []domain.Department) []Choice {
	out := make([]Choice, 0, len(departments))
	for _, d := range departments {
		out = append(out, Choice{Label: d.Name, Value: formatID(d.ID)})
	}
	return out
}

func RoleChoices(roles []domain.Role) []Choice {
	out := make([]Choice, 0, len(roles))
	for _, r := range roles {
		out = append(out, Choice{Label: r.Title, Value: formatID(r.ID)})
	}
	return out
}

// EmployeeChoices lists employees by full name, with a trailing "None" when
// withNone is set.
func EmployeeChoices(employees []domain.EmployeeView, withNone bool) []Choice {
	out := make([]Choice, 0, len(employees)+1)
	for _, e := range employees {
		out = append(out, Choice{Label: e.FullName(), Value: formatID(e.ID)})
	}
	if withNone {
		out = append(out, Choice{Label: "None", Value: noneValue})
	}
	return out
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q: %w", v, err)
	}
	return id, nil
}

func parseOptionalID(v string) (*int64, error) {
	if v == noneValue {
		return nil, nil
	}
	id, err := parseID(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
