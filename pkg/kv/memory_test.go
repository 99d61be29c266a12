package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetAbsent(t *testing.T) {
	s := NewMemoryStore()

	v, ok, err := s.Get(context.Background(), "menuId")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "one"))
	require.NoError(t, s.Set(ctx, "k", "two"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "never-set"))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SetWithTTL(ctx, "session:abc", "v", time.Minute))

	_, ok, _ := s.Get(ctx, "session:abc")
	assert.True(t, ok, "value should be visible before expiry")

	now = now.Add(time.Minute)
	_, ok, _ = s.Get(ctx, "session:abc")
	assert.False(t, ok, "value should be gone at expiry")
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_SetClearsTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SetWithTTL(ctx, "k", "v", time.Second))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	now = now.Add(time.Hour)
	v, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestPrefixed_IsolatesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	a := Prefixed(base, "client:a:")
	b := Prefixed(base, "client:b:")

	require.NoError(t, a.Set(ctx, "menuId", "menu_a"))
	require.NoError(t, b.Set(ctx, "menuId", "menu_b"))

	v, _, _ := a.Get(ctx, "menuId")
	assert.Equal(t, "menu_a", v)
	v, _, _ = b.Get(ctx, "menuId")
	assert.Equal(t, "menu_b", v)

	raw, ok, _ := base.Get(ctx, "client:a:menuId")
	assert.True(t, ok)
	assert.Equal(t, "menu_a", raw)

	require.NoError(t, a.Remove(ctx, "menuId"))
	_, ok, _ = base.Get(ctx, "client:a:menuId")
	assert.False(t, ok)
}

func TestMemoryStore_EvictKeepsRewrittenValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// A reader saw the stale entry, then a writer refreshed it before the
	// reader took the write lock.
	require.NoError(t, s.SetWithTTL(ctx, "session:abc", "old", time.Minute))
	now = now.Add(time.Minute)
	require.NoError(t, s.SetWithTTL(ctx, "session:abc", "fresh", time.Minute))
	s.evict("session:abc")

	v, ok, err := s.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)

	require.NoError(t, s.Set(ctx, "menuId", "menu_1"))
	s.evict("menuId")
	_, ok, _ = s.Get(ctx, "menuId")
	assert.True(t, ok, "keys without expiry are never evicted")
}
