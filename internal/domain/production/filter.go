package production

import (
	"strings"

	"construlog/internal/domain/employee"
)

// Filters are conjunctive history predicates. An empty value matches all for
// that predicate.
type Filters struct {
	Search      string
	EmployeeID  string
	ServiceType string
	DateStart   string // inclusive, YYYY-MM-DD
	DateEnd     string // inclusive, YYYY-MM-DD
}

// Filter returns the entries matching every supplied predicate, most recently
// added first. The free-text search matches case-insensitively against the
// resolved employee name, site, pavimento and service type; a dangling
// employee reference simply has no name to match.
func Filter(entries []Entry, employees []employee.Employee, f Filters) []Entry {
	matched := make([]Entry, 0, len(entries))
	needle := strings.ToLower(f.Search)
	for _, entry := range entries {
		if needle != "" && !matchesSearch(entry, employees, needle) {
			continue
		}
		if f.EmployeeID != "" && entry.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ServiceType != "" && entry.ServiceType != f.ServiceType {
			continue
		}
		if f.DateStart != "" && entry.Date < f.DateStart {
			continue
		}
		if f.DateEnd != "" && entry.Date > f.DateEnd {
			continue
		}
		matched = append(matched, entry)
	}

	// reverse-insertion order
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

func matchesSearch(entry Entry, employees []employee.Employee, needle string) bool {
	if worker, ok := employee.Resolve(employees, entry.EmployeeID); ok {
		if strings.Contains(strings.ToLower(worker.Name), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(entry.Site), needle) ||
		strings.Contains(strings.ToLower(entry.Pavimento), needle) ||
		strings.Contains(strings.ToLower(entry.ServiceType), needle)
}
