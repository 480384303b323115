// Package cache provides a thread-safe LRU cache for parsed expressions.
//
// The cache is used by the GoPratt engine when the WithCaching option is enabled.
// It avoids tokenizing and parsing the same source text on every call, which
// pays off when the same expression arrives many times, as in a REPL history
// or a batch of generated inputs.
//
// # Example
//
//	c := cache.New(1024)
//	expr, err := c.GetOrParse("a + b * c", parse)
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sandrolain/gopratt/pkg/types"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU (Least Recently Used) cache for parsed expressions.
// Once the capacity is reached, the least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines. Cached expressions are
// immutable, so callers may share them freely.
type Cache struct {
	capacity int
	lru      *lru.Cache[string, *types.Expression]
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails for a non-positive size.
	l, _ := lru.New[string, *types.Expression](capacity)
	return &Cache{
		capacity: capacity,
		lru:      l,
	}
}

// Get retrieves an expression from the cache and marks it most recently used.
func (c *Cache) Get(key string) (*types.Expression, bool) {
	return c.lru.Get(key)
}

// Set inserts or replaces an expression in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache) Set(key string, expr *types.Expression) {
	c.lru.Add(key, expr)
}

// GetOrParse retrieves the expression for key from cache, or calls parse()
// to create it, caches the result, and returns it.
// Errors are returned but never cached.
func (c *Cache) GetOrParse(key string, parse func() (*types.Expression, error)) (*types.Expression, error) {
	if expr, ok := c.Get(key); ok {
		return expr, nil
	}
	expr, err := parse()
	if err != nil {
		return nil, err
	}
	c.Set(key, expr)
	return expr, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.lru.Purge()
}
