package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry holds a cached value with its timestamp. Fields are only read or
// written while holding the cache lock.
type entry struct {
	key       string
	value     string
	createdAt time.Time
}

// InMemoryCache is a thread-safe in-memory cache with optional TTL and an
// optional LRU entry cap.
type InMemoryCache struct {
	mu       sync.RWMutex
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	ttl      time.Duration
	capacity int
}

// NewInMemoryCache creates a new in-memory cache.
// If ttlSeconds is 0 or negative, entries never expire.
// If capacity is 0 or negative, the cache is unbounded; otherwise the least
// recently used entry is evicted once capacity is exceeded.
func NewInMemoryCache(ttlSeconds, capacity int) *InMemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0 // No expiration
	}
	if capacity < 0 {
		capacity = 0
	}
	return &InMemoryCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		ttl:      ttl,
		capacity: capacity,
	}
}

// Get retrieves a value from the cache.
// Returns the value and true if found and not expired, empty string and false otherwise.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	elem, ok := c.entries[key]
	var value string
	var createdAt time.Time
	if ok {
		ent := elem.Value.(*entry)
		value, createdAt = ent.value, ent.createdAt
	}
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.ttl > 0 && time.Since(createdAt) > c.ttl {
		// Entry expired - clean it up
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur == elem {
			c.order.Remove(elem)
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	if c.capacity > 0 {
		c.mu.Lock()
		if _, ok := c.entries[key]; ok {
			c.order.MoveToFront(elem)
		}
		c.mu.Unlock()
	}

	return value, true
}

// Set stores a value in the cache, evicting the least recently used entry
// when a capacity is configured and exceeded.
func (c *InMemoryCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.createdAt = time.Now()
		c.order.MoveToFront(elem)
		return nil
	}

	c.entries[key] = c.order.PushFront(&entry{
		key:       key,
		value:     value,
		createdAt: time.Now(),
	})

	if c.capacity > 0 && len(c.entries) > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry).key)
		}
	}

	return nil
}

// Len returns the number of entries in the cache (including expired ones).
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order = list.New()
}

// Stats reports the live entry count and the number of distinct language
// pairs among them. Expired entries are skipped but not removed.
func (c *InMemoryCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pairs := make(map[string]struct{})
	now := time.Now()
	live := 0

	for key, elem := range c.entries {
		ent := elem.Value.(*entry)
		if c.ttl > 0 && now.Sub(ent.createdAt) > c.ttl {
			continue
		}
		live++
		if src, tgt, _, ok := SplitKey(key); ok {
			pairs[src+KeySeparator+tgt] = struct{}{}
		}
	}

	return Stats{Entries: live, LanguagePairs: len(pairs)}
}

// Verify InMemoryCache implements TranslationCache and StatsReader
var (
	_ TranslationCache = (*InMemoryCache)(nil)
	_ StatsReader      = (*InMemoryCache)(nil)
)
