// Package querycache is a small client-side read cache keyed by query. A
// query is either a list (kind + parent id) or a single item (kind + id).
// Entries carry the time they were fetched and go stale after a TTL; mutation
// hooks keep the cache coherent without a refetch where possible and
// invalidate where not.
package querycache

import (
	"sync"
	"time"
)

// Key identifies a cached query.
type Key struct {
	Kind string
	ID   string
}

// ListKey is the cache key for "children of parentID", e.g. the chapters of a
// project. The root list (projects of a user) uses the user id as parent.
func ListKey(kind, parentID string) Key {
	return Key{Kind: kind + ":list", ID: parentID}
}

// ItemKey is the cache key for a single resource.
func ItemKey(kind, id string) Key {
	return Key{Kind: kind, ID: id}
}

type entry struct {
	data      any
	fetchedAt time.Time
	stale     bool
}

// Cache stores query results with staleness tracking. It is safe for
// concurrent use.
type Cache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[Key]entry
}

// DefaultTTL is used when New receives a non-positive ttl.
const DefaultTTL = 5 * time.Minute

// New creates a Cache whose entries go stale after ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[Key]entry),
	}
}

// Get returns the cached data for key. ok is false when the key is absent.
// stale is true when the entry is past its TTL or was marked stale by a
// mutation; callers may show stale data while refetching.
func (c *Cache) Get(key Key) (data any, stale, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	stale = e.stale || time.Since(e.fetchedAt) > c.ttl
	return e.data, stale, true
}

// Set stores fresh data for key.
func (c *Cache) Set(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, fetchedAt: time.Now()}
}

// Invalidate removes the entry for key.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// MarkStale keeps the entry but flags it for refetch.
func (c *Cache) MarkStale(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
		c.entries[key] = e
	}
}

// Patch replaces the data for key in place without touching its staleness
// clock. The entry must already exist; Patch is a no-op otherwise.
func (c *Cache) Patch(key Key, fn func(data any) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.data = fn(e.data)
		c.entries[key] = e
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]entry)
}

// OnCreated applies the create mutation rule: the parent's list no longer
// matches the server, so it goes stale.
func (c *Cache) OnCreated(kind, parentID string) {
	c.MarkStale(ListKey(kind, parentID))
}

// OnUpdated applies the update mutation rule: the item entry is replaced with
// the server's response and the parent's list goes stale (ordering or
// embedded fields may have changed).
func (c *Cache) OnUpdated(kind, id, parentID string, item any) {
	c.Set(ItemKey(kind, id), item)
	c.MarkStale(ListKey(kind, parentID))
}

// OnDeleted applies the delete mutation rule: the item entry is removed and
// the parent's list goes stale. Deleting a container (project, chapter) also
// orphans descendant entries; callers drop those with InvalidateKind.
func (c *Cache) OnDeleted(kind, id, parentID string) {
	c.Invalidate(ItemKey(kind, id))
	c.MarkStale(ListKey(kind, parentID))
}

// InvalidateKind removes every entry of a kind, lists included. Used after
// cascading deletes where individual descendant ids are unknown.
func (c *Cache) InvalidateKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Kind == kind || k.Kind == kind+":list" {
			delete(c.entries, k)
		}
	}
}
