package production

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"construlog/internal/domain/catalog"
	"construlog/internal/domain/validate"
	"construlog/internal/money"
)

// Draft carries the entry-form fields for a create or an edit.
type Draft struct {
	Date         string
	EmployeeID   string
	Site         string
	Pavimento    string
	ServiceType  string
	UnitPrice    float64
	Quantity     float64
	Unit         catalog.Unit
	Observations string
}

func (d Draft) validate() error {
	var missing []string
	if strings.TrimSpace(d.EmployeeID) == "" {
		missing = append(missing, "employeeId")
	}
	if strings.TrimSpace(d.Site) == "" {
		missing = append(missing, "site")
	}
	if strings.TrimSpace(d.Pavimento) == "" {
		missing = append(missing, "pavimento")
	}
	if d.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if d.Date != "" {
		if _, err := time.Parse(DateLayout, d.Date); err != nil {
			missing = append(missing, "date")
		}
	}
	return validate.Check(missing)
}

// CreateOrUpdate applies the draft to the collection and returns the new
// collection plus the saved entry. A catalog service fixes the unit price and
// unit of measure; only a name outside the table keeps the draft's own price.
// TotalValue is recomputed on every write. A create assigns a fresh id and
// creation timestamp; an edit with editingID replaces the matching entry's
// fields while keeping its identity and original timestamp.
func CreateOrUpdate(existing []Entry, draft Draft, editingID string) ([]Entry, Entry, error) {
	if err := draft.validate(); err != nil {
		return nil, Entry{}, err
	}

	if draft.Date == "" {
		draft.Date = time.Now().Format(DateLayout)
	}
	if svc, ok := catalog.Find(draft.ServiceType); ok {
		draft.UnitPrice = svc.Price
		draft.Unit = svc.Unit
	}
	total := money.Round(draft.Quantity * draft.UnitPrice)

	if editingID != "" {
		updated := make([]Entry, len(existing))
		copy(updated, existing)
		for i, entry := range updated {
			if entry.ID != editingID {
				continue
			}
			entry.Date = draft.Date
			entry.EmployeeID = draft.EmployeeID
			entry.Site = draft.Site
			entry.Pavimento = draft.Pavimento
			entry.ServiceType = draft.ServiceType
			entry.UnitPrice = draft.UnitPrice
			entry.Quantity = draft.Quantity
			entry.Unit = draft.Unit
			entry.TotalValue = total
			entry.Observations = draft.Observations
			updated[i] = entry
			return updated, entry, nil
		}
		return nil, Entry{}, ErrNotFound
	}

	created := Entry{
		ID:           uuid.NewString(),
		Date:         draft.Date,
		EmployeeID:   draft.EmployeeID,
		Site:         draft.Site,
		Pavimento:    draft.Pavimento,
		ServiceType:  draft.ServiceType,
		UnitPrice:    draft.UnitPrice,
		Quantity:     draft.Quantity,
		Unit:         draft.Unit,
		TotalValue:   total,
		Observations: draft.Observations,
		CreatedAt:    time.Now().UnixMilli(),
	}
	return append(append(make([]Entry, 0, len(existing)+1), existing...), created), created, nil
}

// Delete removes one entry from the collection.
func Delete(existing []Entry, id string) []Entry {
	out := make([]Entry, 0, len(existing))
	for _, entry := range existing {
		if entry.ID != id {
			out = append(out, entry)
		}
	}
	return out
}
