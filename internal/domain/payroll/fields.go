package payroll

import (
	"errors"

	"construlog/internal/domain/employee"
	"construlog/internal/money"
)

// Payroll-relevant employee fields editable inline from the payroll view.
const (
	FieldGrossSalary = "grossSalary"
	FieldNetSalary   = "netSalary"
	FieldFGTSPercent = "fgtsPercent"
	FieldINSSPercent = "inssPercent"
)

var ErrUnknownField = errors.New("unknown payroll field")

// UpdateEmployeeField returns a copy of the collection with one payroll field
// of one employee overwritten. The value is rounded to two decimals on write.
func UpdateEmployeeField(employees []employee.Employee, id, field string, value float64) ([]employee.Employee, error) {
	value = money.Round(value)
	updated := make([]employee.Employee, len(employees))
	copy(updated, employees)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		switch field {
		case FieldGrossSalary:
			updated[i].GrossSalary = value
		case FieldNetSalary:
			updated[i].NetSalary = value
		case FieldFGTSPercent:
			updated[i].FGTSPercent = value
		case FieldINSSPercent:
			updated[i].INSSPercent = value
		default:
			return nil, ErrUnknownField
		}
		return updated, nil
	}
	return nil, employee.ErrNotFound
}
