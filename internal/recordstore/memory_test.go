package recordstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "alice", []byte(`{"name":"alice"}`)))

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"alice"}`), got)

	require.NoError(t, store.Delete(ctx, "alice"))
	_, err = store.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_DeleteMissingKeyIsNoop(t *testing.T) {
	assert.NoError(t, NewMemory().Delete(context.Background(), "nope"))
}

func TestMemory_KeysSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	for _, k := range []string{"carol", "alice", "bob"} {
		require.NoError(t, store.Put(ctx, k, []byte("x")))
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, keys)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Put(ctx, "k", []byte("abc")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemory_Ping(t *testing.T) {
	assert.NoError(t, NewMemory().Ping(context.Background()))
}
