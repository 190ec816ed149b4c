package querycache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	key := ItemKey("scene", "s1")

	_, _, ok := c.Get(key)
	require.False(t, ok)

	c.Set(key, "draft")

	data, stale, ok := c.Get(key)
	require.True(t, ok)
	assert.False(t, stale)
	assert.Equal(t, "draft", data)
}

func TestCache_TTLExpiryMarksStale(t *testing.T) {
	t.Parallel()

	c := New(10 * time.Millisecond)
	key := ItemKey("scene", "s1")
	c.Set(key, "draft")

	time.Sleep(25 * time.Millisecond)

	data, stale, ok := c.Get(key)
	require.True(t, ok, "expired entries stay readable")
	assert.True(t, stale)
	assert.Equal(t, "draft", data)
}

func TestCache_MarkStaleKeepsData(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	key := ListKey("chapter", "p1")
	c.Set(key, []string{"one", "two"})

	c.MarkStale(key)

	data, stale, ok := c.Get(key)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, []string{"one", "two"}, data)
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	key := ItemKey("scene", "s1")
	c.Set(key, "draft")

	c.Invalidate(key)

	_, _, ok := c.Get(key)
	assert.False(t, ok)
}

func TestCache_Patch(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	key := ItemKey("scene", "s1")
	c.Set(key, "draft")

	c.Patch(key, func(data any) any { return data.(string) + " v2" })

	data, stale, ok := c.Get(key)
	require.True(t, ok)
	assert.False(t, stale, "Patch must not touch the staleness clock")
	assert.Equal(t, "draft v2", data)

	// Patching an absent key is a no-op.
	c.Patch(ItemKey("scene", "missing"), func(data any) any { return "boom" })
	_, _, ok = c.Get(ItemKey("scene", "missing"))
	assert.False(t, ok)
}

func TestCache_MutationRules(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	listKey := ListKey("scene", "ch1")
	c.Set(listKey, []string{"s1"})
	c.Set(ItemKey("scene", "s1"), "draft")

	// Create: the sibling list goes stale, items are untouched.
	c.OnCreated("scene", "ch1")
	_, stale, ok := c.Get(listKey)
	require.True(t, ok)
	assert.True(t, stale)
	_, stale, _ = c.Get(ItemKey("scene", "s1"))
	assert.False(t, stale)

	// Update: the item is refreshed from the response, the list stays stale.
	c.Set(listKey, []string{"s1", "s2"})
	c.OnUpdated("scene", "s1", "ch1", "draft v2")
	data, stale, ok := c.Get(ItemKey("scene", "s1"))
	require.True(t, ok)
	assert.False(t, stale)
	assert.Equal(t, "draft v2", data)
	_, stale, _ = c.Get(listKey)
	assert.True(t, stale)

	// Delete: the item disappears, the list goes stale.
	c.Set(listKey, []string{"s1", "s2"})
	c.OnDeleted("scene", "s1", "ch1")
	_, _, ok = c.Get(ItemKey("scene", "s1"))
	assert.False(t, ok)
	_, stale, _ = c.Get(listKey)
	assert.True(t, stale)
}

func TestCache_InvalidateKind(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set(ItemKey("scene", "s1"), "a")
	c.Set(ItemKey("scene", "s2"), "b")
	c.Set(ListKey("scene", "ch1"), []string{"s1", "s2"})
	c.Set(ItemKey("chapter", "ch1"), "keep")

	c.InvalidateKind("scene")

	_, _, ok := c.Get(ItemKey("scene", "s1"))
	assert.False(t, ok)
	_, _, ok = c.Get(ListKey("scene", "ch1"))
	assert.False(t, ok)
	_, _, ok = c.Get(ItemKey("chapter", "ch1"))
	assert.True(t, ok, "other kinds must survive")
}

func TestCache_NonPositiveTTLUsesDefault(t *testing.T) {
	t.Parallel()

	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set(ItemKey("scene", "s1"), "a")
	c.Set(ListKey("scene", "ch1"), []string{"s1"})

	c.Clear()

	_, _, ok := c.Get(ItemKey("scene", "s1"))
	assert.False(t, ok)
	_, _, ok = c.Get(ListKey("scene", "ch1"))
	assert.False(t, ok)
}
