// Package inmem provides an in-process implementation of
// coldemail.ProfileCache. It is the default cache when no Redis address
// is configured.
package inmem

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// Ensure Cache implements coldemail.ProfileCache at compile time.
var _ coldemail.ProfileCache = (*Cache)(nil)

// Cache is a mutex-guarded map of completed profiles keyed by
// "<domain>_<dayBucket>". Entries older than coldemail.MaxCacheAgeBuckets
// day buckets are evicted opportunistically on writes.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*coldemail.CompanyProfile

	// now is replaceable for tests.
	now func() time.Time
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*coldemail.CompanyProfile),
		now:     time.Now,
	}
}

// Get returns the cached profile for key.
// Returns ENOTFOUND if no entry exists.
func (c *Cache) Get(_ context.Context, key string) (*coldemail.CompanyProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	profile, ok := c.entries[key]
	if !ok {
		return nil, coldemail.Errorf(coldemail.ENOTFOUND, "no cached profile for %q", key)
	}
	return profile, nil
}

// Set stores a completed profile under key and evicts stale entries.
func (c *Cache) Set(_ context.Context, key string, profile *coldemail.CompanyProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = profile
	c.evictLocked()
	return nil
}

// evictLocked removes entries whose day bucket is too old, along with any
// key that does not carry a parseable bucket suffix.
func (c *Cache) evictLocked() {
	current := coldemail.DayBucket(c.now())
	for key := range c.entries {
		idx := strings.LastIndex(key, "_")
		if idx < 0 {
			delete(c.entries, key)
			continue
		}
		bucket, err := strconv.ParseInt(key[idx+1:], 10, 64)
		if err != nil {
			delete(c.entries, key)
			continue
		}
		if current-bucket > coldemail.MaxCacheAgeBuckets {
			delete(c.entries, key)
		}
	}
}
