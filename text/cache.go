// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"iter"
	"slices"
	"sort"
	"sync"
)

// Cache is a generic thread-safe LRU cache with soft limit.
// When the cache exceeds softLimit, the least recently used entries are
// evicted down to three quarters of the limit.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// NewCache creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewCache[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// GetOrCreate returns the cached value for key, calling create under the
// lock on a miss so that concurrent callers never create twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if entry, ok := c.entries[key]; ok {
		entry.atime = c.tick
		return entry.value
	}

	value := create()
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictOldest removes least recently used entries. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for _, e := range all[:toEvict] {
		delete(c.entries, e.key)
	}
}

// layoutKey identifies one Layout call.
type layoutKey struct {
	text   string
	scale  float32
	origin Point
}

// CachedFont wraps a Font and memoizes Layout results keyed on
// (text, scale, origin). Results are returned by value, so callers can never
// mutate the cached glyphs.
type CachedFont struct {
	Font
	layouts *Cache[layoutKey, []PositionedGlyph]
}

// NewCachedFont wraps f with a layout cache holding about softLimit entries.
func NewCachedFont(f Font, softLimit int) *CachedFont {
	return &CachedFont{
		Font:    f,
		layouts: NewCache[layoutKey, []PositionedGlyph](softLimit),
	}
}

// Layout implements Font.
func (c *CachedFont) Layout(s string, scale float32, origin Point) iter.Seq[PositionedGlyph] {
	key := layoutKey{text: s, scale: scale, origin: origin}
	glyphs := c.layouts.GetOrCreate(key, func() []PositionedGlyph {
		return slices.Collect(c.Font.Layout(s, scale, origin))
	})
	return slices.Values(glyphs)
}

// Len returns the number of cached layouts.
func (c *CachedFont) Len() int {
	return c.layouts.Len()
}
