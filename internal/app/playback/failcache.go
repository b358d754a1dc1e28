package playback

import "sync"

// FailedURLCache remembers video URLs the client reported as unplayable
// so the resolver can fall back to image display instead of retrying a
// broken source every render. Oldest entries are evicted once the cache
// reaches its capacity.
type FailedURLCache struct {
	mu    sync.Mutex
	limit int
	seen  map[string]struct{}
	order []string
}

// NewFailedURLCache creates a cache holding at most limit URLs.
func NewFailedURLCache(limit int) *FailedURLCache {
	if limit <= 0 {
		limit = 50
	}
	return &FailedURLCache{
		limit: limit,
		seen:  make(map[string]struct{}),
	}
}

// Record marks a URL as failed.
func (c *FailedURLCache) Record(url string) {
	if url == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[url]; ok {
		return
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.seen, oldest)
	}
	c.seen[url] = struct{}{}
	c.order = append(c.order, url)
}

// Has reports whether the URL was previously recorded as failed.
func (c *FailedURLCache) Has(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[url]
	return ok
}
