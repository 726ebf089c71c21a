package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	err := store.Set(ctx, "cart:c1", []byte(`[{"id":1}]`))
	require.NoError(t, err)

	value, err := store.Get(ctx, "cart:c1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", []byte("one")))
	require.NoError(t, store.Set(ctx, "k", []byte("two")))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Set(ctx, "orders:c1", []byte("a")))
	require.NoError(t, store.Set(ctx, "orders:c2", []byte("b")))
	require.NoError(t, store.Set(ctx, "cart:c1", []byte("c")))

	keys, err := store.List(ctx, "orders:")
	require.NoError(t, err)
	assert.Equal(t, []string{"orders:c1", "orders:c2"}, keys)

	keys, err = store.List(ctx, "pickups:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
