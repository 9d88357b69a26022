package production

import "construlog/internal/domain/catalog"

// Entry is one day of recorded work for one employee. TotalValue is
// denormalized and must always equal round(Quantity * UnitPrice); every write
// path recomputes it rather than trusting caller input. EmployeeID is a weak
// reference: a dangling id is displayed as unknown, never rejected.
type Entry struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"` // YYYY-MM-DD
	EmployeeID   string       `json:"employeeId"`
	Site         string       `json:"site"`
	Pavimento    string       `json:"pavimento"`
	ServiceType  string       `json:"serviceType"`
	UnitPrice    float64      `json:"unitPrice"`
	Quantity     float64      `json:"quantity"`
	Unit         catalog.Unit `json:"unit"`
	TotalValue   float64      `json:"totalValue"`
	Observations string       `json:"observations"`
	CreatedAt    int64        `json:"createdAt"` // unix millis, fixes insertion order
}

// DateLayout is the calendar-day format entries carry. Lexicographic order on
// this layout is chronological order, which the date-range filter relies on.
const DateLayout = "2006-01-02"
