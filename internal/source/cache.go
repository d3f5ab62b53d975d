package source

import (
	"fmt"
	"sync"
	"time"
)

// CachedService wraps a Service with a TTL cache. Views reload both lists on
// every refresh; the cache keeps a burst of refreshes from re-reading the
// same directory and playbook over and over. Invalidate drops everything and
// is called whenever the user or the watcher asks for fresh data.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// maxCacheEntries caps the number of entries in the cache. When exceeded,
// the entire cache is flushed.
const maxCacheEntries = 64

type cacheEntry struct {
	val    any
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val any, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cache) >= maxCacheEntries {
		now := time.Now()
		for k, e := range c.cache {
			if now.After(e.expiry) {
				delete(c.cache, k)
			}
		}
		if len(c.cache) >= maxCacheEntries {
			c.cache = make(map[string]cacheEntry, 8)
		}
	}
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
}

// Root delegates to the inner service.
func (c *CachedService) Root() string { return c.inner.Root() }

// Files returns the directory listing (cached).
func (c *CachedService) Files(sorted bool) ([]File, error) {
	key := fmt.Sprintf("files:%t", sorted)
	if v, ok, err := c.get(key); ok {
		files, _ := v.([]File)
		return files, err
	}
	v, err := c.inner.Files(sorted)
	c.set(key, v, err)
	return v, err
}

// Playbook returns the kept lines of name (cached).
func (c *CachedService) Playbook(name string, ignoreComments bool) ([]Line, error) {
	key := fmt.Sprintf("playbook:%t:%s", ignoreComments, name)
	if v, ok, err := c.get(key); ok {
		lines, _ := v.([]Line)
		return lines, err
	}
	v, err := c.inner.Playbook(name, ignoreComments)
	c.set(key, v, err)
	return v, err
}
