package reports

import (
	"sort"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
)

// UnknownWorker is the display name for entries whose employee reference no
// longer resolves.
const UnknownWorker = "Desconhecido"

// Total is one bar or pie slice of a report.
type Total struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ByService sums production value per service type over the whole collection,
// in first-seen order.
func ByService(entries []production.Entry) []Total {
	index := make(map[string]int, len(entries))
	totals := make([]Total, 0, len(entries))
	for _, entry := range entries {
		if i, ok := index[entry.ServiceType]; ok {
			totals[i].Value += entry.TotalValue
			continue
		}
		index[entry.ServiceType] = len(totals)
		totals = append(totals, Total{Name: entry.ServiceType, Value: entry.TotalValue})
	}
	return totals
}

// ByEmployee sums production value per resolved employee name, descending by
// value. Ties keep first-seen order; the list is cut to the top eight.
func ByEmployee(entries []production.Entry, employees []employee.Employee) []Total {
	index := make(map[string]int, len(entries))
	totals := make([]Total, 0, len(entries))
	for _, entry := range entries {
		name := UnknownWorker
		if worker, ok := employee.Resolve(employees, entry.EmployeeID); ok {
			name = worker.Name
		}
		if i, ok := index[name]; ok {
			totals[i].Value += entry.TotalValue
			continue
		}
		index[name] = len(totals)
		totals = append(totals, Total{Name: name, Value: entry.TotalValue})
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Value > totals[j].Value })
	if len(totals) > 8 {
		totals = totals[:8]
	}
	return totals
}

// Recent returns the last n entries, newest-first.
func Recent(entries []production.Entry, n int) []production.Entry {
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]production.Entry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}

// DayStats is the dashboard summary for one calendar day.
type DayStats struct {
	Entries       int     `json:"entries"`
	Workers       int     `json:"workers"`
	TotalQuantity float64 `json:"totalQuantity"`
}

// StatsForDay counts the day's entries, the distinct workers behind them and
// the total quantity produced.
func StatsForDay(entries []production.Entry, date string) DayStats {
	var stats DayStats
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Date != date {
			continue
		}
		stats.Entries++
		stats.TotalQuantity += entry.Quantity
		seen[entry.EmployeeID] = struct{}{}
	}
	stats.Workers = len(seen)
	return stats
}
