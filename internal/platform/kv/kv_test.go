package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	defer store.Close()

	data, err := store.Load(ctx, "construlog_employees")
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "construlog_production", []byte(`[{"id":"a"}]`)))
	require.NoError(t, store.Save(ctx, "construlog_production", []byte(`[]`)))

	data, err := store.Load(ctx, "construlog_production")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), data)
}

func TestSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "construlog_advances", []byte(`{"abc_2026_8":150.5}`)))
	require.NoError(t, store.Close())

	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	data, err := store.Load(ctx, "construlog_advances")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"abc_2026_8":150.5}`), data)
}
