package dispatch

import "sync"

type cacheKey struct {
	scope Scope
	name  string
	kinds string
}

// resolutionCache memoizes successful resolutions. Dispatch outcomes are a
// pure function of the registry contents and the argument kinds, and the
// registry is read-only once construction ends, so entries never expire.
type resolutionCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Candidate
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		entries: make(map[cacheKey]*Candidate),
	}
}

func (c *resolutionCache) key(scope Scope, name string, kinds []Kind) cacheKey {
	return cacheKey{scope: scope, name: name, kinds: Signature(kinds).String()}
}

func (c *resolutionCache) get(scope Scope, name string, kinds []Kind) (*Candidate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	candidate, ok := c.entries[c.key(scope, name, kinds)]
	return candidate, ok
}

func (c *resolutionCache) put(scope Scope, name string, kinds []Kind, candidate *Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[c.key(scope, name, kinds)] = candidate
}

func (c *resolutionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
