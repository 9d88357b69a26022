package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"construlog/internal/money"
)

// AdvanceKey identifies one employee's cash advance for one calendar month.
// It is an explicit composite key rather than a concatenated string so that
// lookups cannot collide across year boundaries or employee ids.
type AdvanceKey struct {
	EmployeeID string
	Year       int
	Month      time.Month
}

// MarshalText serializes the key as "<employeeId>_<year>_<month>" with the
// month 1-12, which is also the persisted mapping key.
func (k AdvanceKey) MarshalText() ([]byte, error) {
	if k.Month < time.January || k.Month > time.December {
		return nil, fmt.Errorf("advance key: month out of range: %d", k.Month)
	}
	return []byte(fmt.Sprintf("%s_%d_%d", k.EmployeeID, k.Year, int(k.Month))), nil
}

// UnmarshalText parses the year and month from the right, so underscores
// inside an employee id cannot shift the calendar fields.
func (k *AdvanceKey) UnmarshalText(text []byte) error {
	raw := string(text)
	parts := strings.Split(raw, "_")
	if len(parts) < 3 {
		return fmt.Errorf("advance key %q: expected <employeeId>_<year>_<month>", raw)
	}
	year, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return fmt.Errorf("advance key %q: bad year: %w", raw, err)
	}
	month, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return fmt.Errorf("advance key %q: bad month: %w", raw, err)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("advance key %q: month out of range", raw)
	}
	k.EmployeeID = strings.Join(parts[:len(parts)-2], "_")
	k.Year = year
	k.Month = time.Month(month)
	return nil
}

// Advances is the sparse advance table: at most one amount per employee per
// month. Writes overwrite, they never accumulate.
type Advances map[AdvanceKey]float64

// SetAdvance returns a copy of the table with the amount for key overwritten,
// rounded to two decimals on write.
func SetAdvance(advances Advances, key AdvanceKey, amount float64) Advances {
	updated := make(Advances, len(advances)+1)
	for k, v := range advances {
		updated[k] = v
	}
	updated[key] = money.Round(amount)
	return updated
}
