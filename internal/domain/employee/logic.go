package employee

import (
	"strings"

	"github.com/google/uuid"

	"construlog/internal/domain/validate"
)

// Draft carries the registration-form fields for a create or an edit.
type Draft struct {
	Name        string
	Role        Role
	Site        string
	GrossSalary float64
	NetSalary   float64
	FGTSPercent float64
	INSSPercent float64
}

func (d Draft) validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Site) == "" {
		missing = append(missing, "site")
	}
	if d.Role != "" && !validRole(d.Role) {
		missing = append(missing, "role")
	}
	if d.GrossSalary < 0 {
		missing = append(missing, "grossSalary")
	}
	if d.NetSalary < 0 {
		missing = append(missing, "netSalary")
	}
	if d.FGTSPercent < 0 {
		missing = append(missing, "fgtsPercent")
	}
	if d.INSSPercent < 0 {
		missing = append(missing, "inssPercent")
	}
	return validate.Check(missing)
}

func validRole(r Role) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// CreateOrUpdate applies the draft to the collection and returns the new
// collection plus the saved record. A create assigns a fresh id and forces
// the record active; an edit with editingID replaces the matching record's
// fields while keeping its identity and active flag.
func CreateOrUpdate(existing []Employee, draft Draft, editingID string) ([]Employee, Employee, error) {
	if err := draft.validate(); err != nil {
		return nil, Employee{}, err
	}

	role := draft.Role
	if role == "" {
		role = RolePedreiro
	}

	if editingID != "" {
		updated := make([]Employee, len(existing))
		copy(updated, existing)
		for i, emp := range updated {
			if emp.ID != editingID {
				continue
			}
			emp.Name = draft.Name
			emp.Role = role
			emp.Site = draft.Site
			emp.GrossSalary = draft.GrossSalary
			emp.NetSalary = draft.NetSalary
			emp.FGTSPercent = draft.FGTSPercent
			emp.INSSPercent = draft.INSSPercent
			updated[i] = emp
			return updated, emp, nil
		}
		return nil, Employee{}, ErrNotFound
	}

	created := Employee{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Role:        role,
		Site:        draft.Site,
		Active:      true,
		GrossSalary: draft.GrossSalary,
		NetSalary:   draft.NetSalary,
		FGTSPercent: draft.FGTSPercent,
		INSSPercent: draft.INSSPercent,
	}
	return append(append(make([]Employee, 0, len(existing)+1), existing...), created), created, nil
}

// SetActive flips one employee's active flag without touching anything else.
func SetActive(existing []Employee, id string, active bool) ([]Employee, error) {
	updated := make([]Employee, len(existing))
	copy(updated, existing)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Active = active
			return updated, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes one employee. Production entries referencing it are left in
// place; they degrade to an unknown-worker display.
func Delete(existing []Employee, id string) []Employee {
	out := make([]Employee, 0, len(existing))
	for _, emp := range existing {
		if emp.ID != id {
			out = append(out, emp)
		}
	}
	return out
}

// SearchByName filters the collection by a case-insensitive name substring.
func SearchByName(existing []Employee, term string) []Employee {
	if term == "" {
		return existing
	}
	needle := strings.ToLower(term)
	out := make([]Employee, 0, len(existing))
	for _, emp := range existing {
		if strings.Contains(strings.ToLower(emp.Name), needle) {
			out = append(out, emp)
		}
	}
	return out
}

// Active returns the employees available for new production entries.
func Active(existing []Employee) []Employee {
	out := make([]Employee, 0, len(existing))
	for _, emp := range existing {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out
}

// Resolve looks an employee up by id. The reference is weak: a missing id is
// not an error, the caller decides how to degrade.
func Resolve(existing []Employee, id string) (Employee, bool) {
	for _, emp := range existing {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}
