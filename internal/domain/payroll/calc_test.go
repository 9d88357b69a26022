package payroll

import (
	"reflect"
	"testing"
	"time"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
)

func TestComputeRoundingChain(t *testing.T) {
	emp := employee.Employee{
		ID:          "e1",
		Name:        "João",
		GrossSalary: 1000,
		NetSalary:   800,
		FGTSPercent: 8,
		INSSPercent: 9,
	}
	// three entries summing to 1500.555, which must round to 1500.56
	// before anything is subtracted from it
	entries := []production.Entry{
		{ID: "p1", EmployeeID: "e1", Date: "2026-08-03", TotalValue: 500.185},
		{ID: "p2", EmployeeID: "e1", Date: "2026-08-10", TotalValue: 500.185},
		{ID: "p3", EmployeeID: "e1", Date: "2026-08-21", TotalValue: 500.185},
	}
	advances := Advances{
		{EmployeeID: "e1", Year: 2026, Month: time.August}: 50,
	}

	lines := Compute([]employee.Employee{emp}, entries, advances, 2026, time.August)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	line := lines[0]
	if line.MonthlyProduction != 1500.56 {
		t.Fatalf("expected monthly production 1500.56, got %v", line.MonthlyProduction)
	}
	if line.FGTSValue != 80 || line.INSSValue != 90 {
		t.Fatalf("expected FGTS 80 and INSS 90, got %v and %v", line.FGTSValue, line.INSSValue)
	}
	if line.CashPayment != 480.56 {
		t.Fatalf("expected cash payment 480.56, got %v", line.CashPayment)
	}
	if line.TotalToReceiveInCash != 1280.56 {
		t.Fatalf("expected total 1280.56, got %v", line.TotalToReceiveInCash)
	}
}

func TestComputeFiltersByMonthAndEmployee(t *testing.T) {
	emp := employee.Employee{ID: "e1", NetSalary: 0}
	entries := []production.Entry{
		{EmployeeID: "e1", Date: "2026-08-01", TotalValue: 100},
		{EmployeeID: "e1", Date: "2026-07-31", TotalValue: 40}, // wrong month
		{EmployeeID: "e1", Date: "2025-08-15", TotalValue: 40}, // wrong year
		{EmployeeID: "e2", Date: "2026-08-15", TotalValue: 40}, // other employee
		{EmployeeID: "e1", Date: "bogus", TotalValue: 40},      // unparseable date
	}

	lines := Compute([]employee.Employee{emp}, entries, Advances{}, 2026, time.August)
	if lines[0].MonthlyProduction != 100 {
		t.Fatalf("expected 100, got %v", lines[0].MonthlyProduction)
	}
}

func TestComputeMissingAdvanceIsZero(t *testing.T) {
	emp := employee.Employee{ID: "e1"}
	lines := Compute([]employee.Employee{emp}, nil, Advances{}, 2026, time.August)
	if lines[0].Advance != 0 {
		t.Fatalf("expected zero advance, got %v", lines[0].Advance)
	}
}

func TestComputeNegativeCashPaymentKeptOnLine(t *testing.T) {
	emp := employee.Employee{ID: "e1", NetSalary: 500}
	lines := Compute([]employee.Employee{emp}, nil, Advances{}, 2026, time.August)
	if lines[0].CashPayment != -500 {
		t.Fatalf("expected -500, got %v", lines[0].CashPayment)
	}
	if lines[0].TotalToReceiveInCash != 0 {
		t.Fatalf("expected total 0, got %v", lines[0].TotalToReceiveInCash)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", GrossSalary: 2345.67, NetSalary: 1987.65, FGTSPercent: 8, INSSPercent: 9.5},
		{ID: "e2", GrossSalary: 1811.11, NetSalary: 1500.01, FGTSPercent: 8, INSSPercent: 11},
	}
	entries := []production.Entry{
		{EmployeeID: "e1", Date: "2026-08-05", TotalValue: 123.45},
		{EmployeeID: "e2", Date: "2026-08-06", TotalValue: 678.91},
		{EmployeeID: "e1", Date: "2026-08-07", TotalValue: 0.01},
	}
	advances := Advances{{EmployeeID: "e2", Year: 2026, Month: time.August}: 77.77}

	first := Compute(employees, entries, advances, 2026, time.August)
	second := Compute(employees, entries, advances, 2026, time.August)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different payroll lines")
	}
}

func TestTotalCashToWithdrawExcludesNegatives(t *testing.T) {
	lines := []Line{
		{CashPayment: -120},
		{CashPayment: 300},
	}
	if total := TotalCashToWithdraw(lines); total != 300 {
		t.Fatalf("expected 300, got %v", total)
	}
}
