package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheObserver is told about every cache lookup.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// Cached is a read-through LRU in front of another Store. Only reads fill
// the cache; writes go to the backing store and then drop the cached entry.
// A read that started before a write never fills the cache after it.
type Cached struct {
	next     Store
	cache    *lru.Cache[string, []byte]
	observer CacheObserver

	mu  sync.Mutex
	gen uint64 // bumped by every Set and Remove
}

func NewCached(next Store, size int, observer CacheObserver) (*Cached, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create kv cache: %w", err)
	}
	return &Cached{next: next, cache: cache, observer: observer}, nil
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		c.hit()
		return clone(v), nil
	}
	c.miss()

	c.mu.Lock()
	seen := c.gen
	c.mu.Unlock()

	v, err := c.next.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c.mu.Lock()
	if c.gen == seen {
		c.cache.Add(key, clone(v))
	}
	c.mu.Unlock()
	return v, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	err := c.next.Set(ctx, key, value)
	c.invalidate(key)
	return err
}

func (c *Cached) Remove(ctx context.Context, key string) error {
	err := c.next.Remove(ctx, key)
	c.invalidate(key)
	return err
}

func (c *Cached) invalidate(key string) {
	c.mu.Lock()
	c.gen++
	c.cache.Remove(key)
	c.mu.Unlock()
}

// Len is the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}

func (c *Cached) hit() {
	if c.observer != nil {
		c.observer.CacheHit()
	}
}

func (c *Cached) miss() {
	if c.observer != nil {
		c.observer.CacheMiss()
	}
}
