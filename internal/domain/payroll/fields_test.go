package payroll

import (
	"errors"
	"testing"

	"construlog/internal/domain/employee"
)

func TestUpdateEmployeeField(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", GrossSalary: 1000}, {ID: "e2"}}

	updated, err := UpdateEmployeeField(employees, "e1", FieldGrossSalary, 1234.567)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated[0].GrossSalary != 1234.57 {
		t.Fatalf("expected rounded 1234.57, got %v", updated[0].GrossSalary)
	}
	if employees[0].GrossSalary != 1000 {
		t.Fatal("input collection was mutated")
	}
}

func TestUpdateEmployeeFieldUnknownField(t *testing.T) {
	employees := []employee.Employee{{ID: "e1"}}
	if _, err := UpdateEmployeeField(employees, "e1", "salary", 10); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestUpdateEmployeeFieldMissingEmployee(t *testing.T) {
	if _, err := UpdateEmployeeField(nil, "ghost", FieldNetSalary, 10); !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
