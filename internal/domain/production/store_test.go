package production

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"construlog/internal/domain/catalog"
	"construlog/internal/platform/kv"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kvStore, err := kv.Open(ctx, filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	defer kvStore.Close()
	store := NewStore(kvStore)

	empty, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	entries := []Entry{
		{
			ID: "p1", Date: "2026-08-15", EmployeeID: "e1", Site: "Torre A",
			Pavimento: "10º Andar", ServiceType: "Reboco Shaft", UnitPrice: 8.5,
			Quantity: 12.34, Unit: catalog.UnitSquareMeter, TotalValue: 104.89,
			Observations: "parede leste", CreatedAt: 1767225600123,
		},
		{ID: "p2", Date: "2026-08-16", EmployeeID: "e2", ServiceType: "Verga", Site: "Torre A", Pavimento: "Térreo", UnitPrice: 20, Quantity: 3, Unit: catalog.UnitPiece, TotalValue: 60, CreatedAt: 1767312000456},
	}
	require.NoError(t, store.SaveAll(ctx, entries))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, entries, loaded)
}
