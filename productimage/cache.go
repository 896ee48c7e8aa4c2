package productimage

import "sync"

// URLCache remembers generated image locators for the life of the process.
// Entries are never evicted.
type URLCache struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewURLCache() *URLCache {
	return &URLCache{urls: make(map[string]string)}
}

func CacheKey(category, product string) string {
	return category + "-" + product
}

func (c *URLCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.urls[key]
	return url, ok
}

func (c *URLCache) Set(key, url string) {
	c.mu.Lock()
	c.urls[key] = url
	c.mu.Unlock()
}

func (c *URLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
