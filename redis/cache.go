// Package redis provides a Redis-backed implementation of
// coldemail.ProfileCache for deployments where scrapes are shared across
// processes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// DefaultTTL matches the in-memory cache's 7-day-bucket retention.
const DefaultTTL = coldemail.MaxCacheAgeBuckets * 24 * time.Hour

// Ensure Cache implements coldemail.ProfileCache at compile time.
var _ coldemail.ProfileCache = (*Cache)(nil)

// Cache stores JSON-encoded profiles in Redis with a TTL. Keys are
// hashed so arbitrary domains cannot produce awkward Redis key shapes.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewCache creates a Cache on top of an existing Redis client.
func NewCache(client *redis.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached profile for key.
// Returns ENOTFOUND on a cache miss.
func (c *Cache) Get(ctx context.Context, key string) (*coldemail.CompanyProfile, error) {
	data, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if err == redis.Nil {
		return nil, coldemail.Errorf(coldemail.ENOTFOUND, "no cached profile for %q", key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var profile coldemail.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode cached profile: %w", err)
	}
	return &profile, nil
}

// Set stores a completed profile under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, profile *coldemail.CompanyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := c.client.Set(ctx, redisKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func redisKey(key string) string {
	return fmt.Sprintf("profile:%x", xxhash.Sum64String(key))
}
