package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	kv.Set("k", "v")
	got, ok := kv.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	kv.Remove("k")
	_, ok = kv.Get("k")
	assert.False(t, ok)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrefsKVRoundTrip(t *testing.T) {
	store := newTestStore(t)

	kv := store.KV("client-a")
	kv.Set("characters.filters", `{"search":"drake"}`)

	got, ok := kv.Get("characters.filters")
	assert.True(t, ok)
	assert.Equal(t, `{"search":"drake"}`, got)

	// Overwrite
	kv.Set("characters.filters", `{"search":""}`)
	got, _ = kv.Get("characters.filters")
	assert.Equal(t, `{"search":""}`, got)

	kv.Remove("characters.filters")
	_, ok = kv.Get("characters.filters")
	assert.False(t, ok)
}

func TestPrefsKVNamespaceIsolation(t *testing.T) {
	store := newTestStore(t)

	store.KV("client-a").Set("codes.view_mode", "grid")

	_, ok := store.KV("client-b").Get("codes.view_mode")
	assert.False(t, ok)
}

func TestRegisterClient(t *testing.T) {
	store := newTestStore(t)

	id, err := store.RegisterClient()
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	exists, err := store.ClientExists(id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ClientExists("nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedeemedCodes(t *testing.T) {
	store := newTestStore(t)
	id, err := store.RegisterClient()
	require.NoError(t, err)

	require.NoError(t, store.SetRedeemed(id, "DRAGON2026", true))
	require.NoError(t, store.SetRedeemed(id, "WELCOME", true))

	redeemed, err := store.RedeemedCodes(id)
	require.NoError(t, err)
	assert.True(t, redeemed["DRAGON2026"])
	assert.True(t, redeemed["WELCOME"])
	assert.Len(t, redeemed, 2)

	// Toggling twice is stable
	require.NoError(t, store.SetRedeemed(id, "DRAGON2026", true))
	redeemed, err = store.RedeemedCodes(id)
	require.NoError(t, err)
	assert.Len(t, redeemed, 2)

	// Unmark
	require.NoError(t, store.SetRedeemed(id, "DRAGON2026", false))
	redeemed, err = store.RedeemedCodes(id)
	require.NoError(t, err)
	assert.False(t, redeemed["DRAGON2026"])
	assert.Len(t, redeemed, 1)
}
