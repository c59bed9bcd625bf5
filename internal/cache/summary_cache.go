// Package cache holds shared caches backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"

	"oro/internal/models"
)

// Cache defaults.
const (
	DefaultSummaryTTL = 30 * time.Second
	DefaultPrefix     = "oro:"
	summaryKey        = "analytics:summary"
	generationKey     = "analytics:generation"
)

// SummaryCache stores the analytics dashboard between writes.
//
// Entries are keyed by a generation that Invalidate advances. Get reports the
// generation it read and Set stores under the generation it is given, so a
// summary computed before an invalidation can never be served after it.
type SummaryCache interface {
	Get(ctx context.Context) (summary *models.AnalyticsSummary, generation int64, ok bool)
	Set(ctx context.Context, generation int64, summary *models.AnalyticsSummary) error
	Invalidate(ctx context.Context) error
}

// RedisSummaryCache is a SummaryCache shared by every replica through Redis.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string

	hits   int64
	misses int64
}

// Option customizes a RedisSummaryCache.
type Option func(*RedisSummaryCache)

// WithTTL sets how long a cached summary stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(c *RedisSummaryCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPrefix namespaces the cache keys.
func WithPrefix(prefix string) Option {
	return func(c *RedisSummaryCache) {
		c.prefix = prefix
	}
}

// NewRedisSummaryCache creates a Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client, opts ...Option) *RedisSummaryCache {
	c := &RedisSummaryCache{
		client: client,
		ttl:    DefaultSummaryTTL,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisSummaryCache) key(generation int64) string {
	return c.prefix + summaryKey + ":" + strconv.FormatInt(generation, 10)
}

func (c *RedisSummaryCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.prefix+generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get returns the cached summary for the current generation. Redis errors and
// corrupt entries count as misses; a negative generation means the current
// one could not be read and the caller should not Set.
func (c *RedisSummaryCache) Get(ctx context.Context) (*models.AnalyticsSummary, int64, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, -1, false
	}

	val, err := c.client.Get(ctx, c.key(gen)).Bytes()
	if err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, gen, false
	}

	var summary models.AnalyticsSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, gen, false
	}
	atomic.AddInt64(&c.hits, 1)
	return &summary, gen, true
}

// Set stores summary under generation for the configured TTL. Negative
// generations are ignored.
func (c *RedisSummaryCache) Set(ctx context.Context, generation int64, summary *models.AnalyticsSummary) error {
	if generation < 0 {
		return nil
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, c.key(generation), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}

// Invalidate advances the generation. Entries of older generations are left
// to expire.
func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.prefix+generationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary: %w", err)
	}
	return nil
}

// Stats reports hit and miss counts.
func (c *RedisSummaryCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Connect opens a Redis client for url and verifies it answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
