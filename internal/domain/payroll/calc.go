package payroll

import (
	"time"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
	"construlog/internal/money"
)

// Line is one employee's payroll for the reference month. CashPayment keeps
// its sign: a negative value means deductions and advances exceeded what the
// month's production earned. Display clamps it to zero; the team total
// excludes it entirely.
type Line struct {
	employee.Employee
	MonthlyProduction    float64 `json:"monthlyProduction"`
	Advance              float64 `json:"advance"`
	FGTSValue            float64 `json:"fgtsVal"`
	INSSValue            float64 `json:"inssVal"`
	CashPayment          float64 `json:"cashPayment"`
	TotalToReceiveInCash float64 `json:"totalToReceiveInCash"`
}

// Compute derives one payroll line per employee for the given month. Every
// intermediate is rounded to two decimals before it feeds the next formula;
// that ordering is part of the contract and changes cent-level results.
func Compute(employees []employee.Employee, entries []production.Entry, advances Advances, year int, month time.Month) []Line {
	lines := make([]Line, 0, len(employees))
	for _, emp := range employees {
		var sum float64
		for _, entry := range entries {
			if entry.EmployeeID != emp.ID || !inMonth(entry.Date, year, month) {
				continue
			}
			sum += entry.TotalValue
		}
		monthlyProduction := money.Round(sum)
		advance := money.Round(advances[AdvanceKey{EmployeeID: emp.ID, Year: year, Month: month}])
		fgts := money.Round(emp.GrossSalary * emp.FGTSPercent / 100)
		inss := money.Round(emp.GrossSalary * emp.INSSPercent / 100)
		cash := money.Round(monthlyProduction - emp.NetSalary - fgts - inss - advance)

		lines = append(lines, Line{
			Employee:             emp,
			MonthlyProduction:    monthlyProduction,
			Advance:              advance,
			FGTSValue:            fgts,
			INSSValue:            inss,
			CashPayment:          cash,
			TotalToReceiveInCash: money.Round(emp.NetSalary + cash),
		})
	}
	return lines
}

// TotalCashToWithdraw sums the positive cash payments across the team.
// Negative lines are an over-deduction, not a debt collected, so they are
// left out rather than netted.
func TotalCashToWithdraw(lines []Line) float64 {
	var sum float64
	for _, line := range lines {
		if line.CashPayment > 0 {
			sum += line.CashPayment
		}
	}
	return money.Round(sum)
}

func inMonth(date string, year int, month time.Month) bool {
	parsed, err := time.Parse(production.DateLayout, date)
	if err != nil {
		return false
	}
	return parsed.Year() == year && parsed.Month() == month
}
