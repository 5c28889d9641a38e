package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"badgeserver/internal/domain"
)

// BadgeCache holds resolved badges for a fixed TTL. Entries are checked for
// expiry on read; ristretto's own TTL sweep reclaims their memory.
type BadgeCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
	now   func() time.Time
}

type Option func(*BadgeCache)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *BadgeCache) {
		c.now = now
	}
}

func New(maxSizePow2 int, ttl time.Duration, opts ...Option) (*BadgeCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	c := &BadgeCache{cache: cache, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *BadgeCache) Get(key string) (domain.CacheEntry, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return domain.CacheEntry{}, false
	}
	entry := val.(domain.CacheEntry)
	if entry.Expired(c.now()) {
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Set replaces any entry stored under key. The entry is visible to Get once
// Set returns.
func (c *BadgeCache) Set(key string, badge domain.Badge, format domain.Format) domain.CacheEntry {
	entry := domain.CacheEntry{
		Key:       key,
		Badge:     badge,
		Format:    format,
		ExpiresAt: c.now().Add(c.ttl),
	}
	cost := int64(len(key) + len(badge.Label) + len(badge.Value) + len(badge.ColorHex) + len(badge.Colorscheme))
	c.cache.SetWithTTL(key, entry, cost, c.ttl)
	c.cache.Wait()
	return entry
}

func (c *BadgeCache) TTL() time.Duration {
	return c.ttl
}

func (c *BadgeCache) Close() {
	c.cache.Close()
}

func (c *BadgeCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
