package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeConformance exercises the Store contract shared by all backends.
func storeConformance(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Read(ctx, "missing.csv")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, "tables/a.csv", []byte("x,y\n1,2\n")))
	require.NoError(t, store.Write(ctx, "tables/b.csv", []byte("x\n")))
	require.NoError(t, store.Write(ctx, "other.json", []byte("{}")))

	data, err := store.Read(ctx, "tables/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", string(data))

	// Overwrite replaces contents.
	require.NoError(t, store.Write(ctx, "tables/a.csv", []byte("x\n9\n")))
	data, err = store.Read(ctx, "tables/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "x\n9\n", string(data))

	names, err := store.List(ctx, "tables/")
	require.NoError(t, err)
	assert.Equal(t, []string{"tables/a.csv", "tables/b.csv"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	require.NoError(t, store.Delete(ctx, "tables/a.csv"))
	_, err = store.Read(ctx, "tables/a.csv")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, "tables/a.csv"))
}

func TestMemoryStore(t *testing.T) {
	storeConformance(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	storeConformance(t, NewLocalStore(t.TempDir()))
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, store.Write(ctx, "k", buf))
	buf[0] = 'z'

	data, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data), "writes must copy")

	data[0] = 'z'
	again, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again), "reads must copy")
}

func TestLocalStoreListEmptyRoot(t *testing.T) {
	store := NewLocalStore(t.TempDir() + "/does-not-exist-yet")
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}
