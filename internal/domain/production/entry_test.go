package production

import (
	"errors"
	"reflect"
	"testing"

	"construlog/internal/domain/catalog"
	"construlog/internal/domain/validate"
)

func validDraft() Draft {
	return Draft{
		Date:        "2026-08-15",
		EmployeeID:  "e1",
		Site:        "Torre A",
		Pavimento:   "10º Andar",
		ServiceType: "Alvenaria Interna",
		Quantity:    12.5,
	}
}

func TestCreateComputesTotalFromCatalog(t *testing.T) {
	updated, saved, err := CreateOrUpdate(nil, validDraft(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("expected one entry, got %d", len(updated))
	}
	// Alvenaria Interna is 10.00/m² in the table
	if saved.UnitPrice != 10 || saved.Unit != catalog.UnitSquareMeter {
		t.Fatalf("catalog price not applied: %+v", saved)
	}
	if saved.TotalValue != 125 {
		t.Fatalf("expected total 125, got %v", saved.TotalValue)
	}
	if saved.ID == "" || saved.CreatedAt == 0 {
		t.Fatal("create must assign id and creation timestamp")
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	draft := Draft{ServiceType: "Reboco"}
	_, _, err := CreateOrUpdate(nil, draft, "")
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := []string{"employeeId", "site", "pavimento", "quantity"}
	if !reflect.DeepEqual(verr.Fields, want) {
		t.Fatalf("expected fields %v, got %v", want, verr.Fields)
	}
}

func TestCreateRejectsZeroQuantity(t *testing.T) {
	draft := validDraft()
	draft.Quantity = 0
	if _, _, err := CreateOrUpdate(nil, draft, ""); err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	draft := validDraft()
	draft.Date = "15/08/2026"
	if _, _, err := CreateOrUpdate(nil, draft, ""); err == nil {
		t.Fatal("expected validation error for malformed date")
	}
}

func TestTotalValueNeverTrusted(t *testing.T) {
	// a stale total from the caller must be recomputed, not preserved
	draft := validDraft()
	draft.ServiceType = "Chapisco" // 1.00/m²
	draft.Quantity = 3
	_, saved, err := CreateOrUpdate(nil, draft, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.TotalValue != 3 {
		t.Fatalf("expected recomputed total 3, got %v", saved.TotalValue)
	}
}

func TestManualServiceKeepsDraftPrice(t *testing.T) {
	draft := validDraft()
	draft.ServiceType = "Concretagem de laje" // not in the table
	draft.UnitPrice = 42.42
	draft.Unit = catalog.UnitCubicMeter
	_, saved, err := CreateOrUpdate(nil, draft, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.UnitPrice != 42.42 || saved.Unit != catalog.UnitCubicMeter {
		t.Fatalf("freeform service lost its price: %+v", saved)
	}

	// the catalog escape hatch itself is pinned at zero
	draft.ServiceType = catalog.ManualService
	_, saved, err = CreateOrUpdate(nil, draft, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.UnitPrice != 0 || saved.TotalValue != 0 {
		t.Fatalf("manual catalog entry must price at zero: %+v", saved)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	collection, created, err := CreateOrUpdate(nil, validDraft(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := validDraft()
	draft.Quantity = 20
	updated, saved, err := CreateOrUpdate(collection, draft, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != created.ID || saved.CreatedAt != created.CreatedAt {
		t.Fatal("edit must preserve id and creation timestamp")
	}
	if saved.TotalValue != 200 {
		t.Fatalf("expected recomputed total 200, got %v", saved.TotalValue)
	}
	if len(updated) != 1 {
		t.Fatalf("edit must replace, not append: %d entries", len(updated))
	}
}

func TestUpdateUnchangedIsIdempotent(t *testing.T) {
	collection, created, err := CreateOrUpdate(nil, validDraft(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _, err := CreateOrUpdate(collection, validDraft(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(collection, again) {
		t.Fatal("editing with unchanged fields must yield an identical collection")
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	if _, _, err := CreateOrUpdate(nil, validDraft(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	collection, created, err := CreateOrUpdate(nil, validDraft(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining := Delete(collection, created.ID); len(remaining) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(remaining))
	}
	if remaining := Delete(collection, "ghost"); len(remaining) != 1 {
		t.Fatal("deleting an unknown id must be a no-op")
	}
}
