// Package recent tracks products touched in the current session for a fixed
// time window, so freshness filters reflect an edit before the stored
// timestamp propagates back.
package recent

import (
	"sync"
	"time"
)

// Cache is a TTL set of product IDs. Expiry is a scheduled timer per entry;
// marking an already-present product restarts its timer.
type Cache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[int]*time.Timer
}

// NewCache returns Cache expiring entries after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[int]*time.Timer),
	}
}

// Mark adds productID to the set and (re)starts its expiry timer.
func (c *Cache) Mark(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.entries[productID]; ok {
		timer.Stop()
	}

	c.entries[productID] = time.AfterFunc(c.ttl, func() {
		c.expire(productID)
	})
}

// Contains reports whether productID is still marked.
func (c *Cache) Contains(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[productID]
	return ok
}

// Len returns the number of marked products.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stop cancels all pending expirations and clears the set.
func (c *Cache) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, timer := range c.entries {
		timer.Stop()
		delete(c.entries, id)
	}
}

func (c *Cache) expire(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, productID)
}
