// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package cache

import (
	"sync"
	"time"
)

const (
	defaultCapacity = 256
	defaultTTL      = 10 * time.Minute
)

type lruNode[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *lruNode[K, V]
	next      *lruNode[K, V]
}

// LRU is a least-recently-used cache with a per-entry TTL.
//
// Lookups, inserts and evictions are O(1): a map indexes the nodes of a
// doubly-linked list whose front is the most recently used entry. Expired
// entries are dropped lazily on access or by Sweep.
type LRU[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[K]*lruNode[K, V]
	// head.next is the newest entry, tail.prev the oldest.
	head *lruNode[K, V]
	tail *lruNode[K, V]

	hits   uint64
	misses uint64
}

// NewLRU creates a cache. Non-positive capacity or ttl select the defaults.
func NewLRU[K comparable, V any](capacity int, ttl time.Duration) *LRU[K, V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	c := &LRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[K]*lruNode[K, V], capacity),
		head:     &lruNode[K, V]{},
		tail:     &lruNode[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the live value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	if c.now().After(n.expiresAt) {
		c.unlink(n)
		c.misses++
		var zero V
		return zero, false
	}

	c.moveToFront(n)
	c.hits++
	return n.value, true
}

// Put inserts or replaces key, evicting the oldest entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if n, ok := c.items[key]; ok {
		n.value = value
		n.expiresAt = expiresAt
		c.moveToFront(n)
		return
	}

	n := &lruNode[K, V]{key: key, value: value, expiresAt: expiresAt}
	c.pushFront(n)
	c.items[key] = n

	for len(c.items) > c.capacity {
		oldest := c.tail.prev
		if oldest == c.head {
			break
		}
		c.unlink(oldest)
	}
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if ok {
		c.unlink(n)
	}
	return ok
}

// Purge drops every entry. Statistics are kept.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*lruNode[K, V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Sweep removes expired entries and returns how many were dropped.
func (c *LRU[K, V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for n := c.tail.prev; n != c.head; {
		prev := n.prev
		if now.After(n.expiresAt) {
			c.unlink(n)
			removed++
		}
		n = prev
	}
	return removed
}

// Len returns the number of entries, expired ones included until swept.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit and miss counters.
func (c *LRU[K, V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// list helpers; callers hold mu

func (c *LRU[K, V]) pushFront(n *lruNode[K, V]) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

func (c *LRU[K, V]) moveToFront(n *lruNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	c.pushFront(n)
}

func (c *LRU[K, V]) unlink(n *lruNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	delete(c.items, n.key)
}
