package coldemail

import (
	"context"
	"fmt"
	"time"
)

// cacheBucketDuration is the coarseness of cache keys: profiles scraped on
// the same day for the same domain share one entry.
const cacheBucketDuration = 24 * time.Hour

// MaxCacheAgeBuckets is how many day buckets a cached profile stays valid.
const MaxCacheAgeBuckets = 7

// ProfileCache stores completed profiles keyed by domain and day bucket.
// Only finished profiles are cached; a profile mid-scrape is never shared.
type ProfileCache interface {
	// Get returns the cached profile for key.
	// Returns ENOTFOUND if no entry exists.
	Get(ctx context.Context, key string) (*CompanyProfile, error)

	// Set stores a completed profile under key.
	Set(ctx context.Context, key string, profile *CompanyProfile) error
}

// CacheKey returns the cache key for a domain at the given time, in the
// form "<domain>_<bucket>".
func CacheKey(domain string, now time.Time) string {
	return fmt.Sprintf("%s_%d", domain, DayBucket(now))
}

// DayBucket returns the day-granularity time bucket for t.
func DayBucket(t time.Time) int64 {
	return t.Unix() / int64(cacheBucketDuration/time.Second)
}
