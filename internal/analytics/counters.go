// Package analytics keeps the rolling per-day hit counters and persists them.
package analytics

import (
	"sync"
	"time"

	"badgeserver/internal/domain"
)

type Bucket int

const (
	// BucketVendor counts hits on vendor backed routes.
	BucketVendor Bucket = iota
	// BucketRaw counts hits on the generic label-value-color routes.
	BucketRaw
)

func (b Bucket) String() string {
	if b == BucketRaw {
		return "raw"
	}
	return "vendor"
}

// Counters holds two arrays of hits indexed by day of month. Slots that were
// skipped since the last recorded day are zeroed before counting, so each
// slot holds at most one month of history.
type Counters struct {
	mu      sync.Mutex
	vendor  [domain.AnalyticsSlots]int64
	raw     [domain.AnalyticsSlots]int64
	lastDay int
	now     func() time.Time
}

type Option func(*Counters)

func WithClock(now func() time.Time) Option {
	return func(c *Counters) {
		c.now = now
	}
}

func NewCounters(opts ...Option) *Counters {
	c := &Counters{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.lastDay = c.now().Day()
	return c
}

func (c *Counters) Record(b Bucket) {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.now().Day()
	for c.lastDay != today {
		c.lastDay = (c.lastDay + 1) % domain.AnalyticsSlots
		c.vendor[c.lastDay] = 0
		c.raw[c.lastDay] = 0
	}

	if b == BucketRaw {
		c.raw[today]++
	} else {
		c.vendor[today]++
	}
}

func (c *Counters) Snapshot() domain.AnalyticsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.AnalyticsSnapshot{
		VendorMonthly: append([]int64(nil), c.vendor[:]...),
		RawMonthly:    append([]int64(nil), c.raw[:]...),
	}
}

// Restore loads a snapshot. A snapshot without exactly AnalyticsSlots slots
// per array resets both arrays and Restore reports false.
func (c *Counters) Restore(s domain.AnalyticsSnapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !s.Valid() {
		c.vendor = [domain.AnalyticsSlots]int64{}
		c.raw = [domain.AnalyticsSlots]int64{}
		return false
	}
	copy(c.vendor[:], s.VendorMonthly)
	copy(c.raw[:], s.RawMonthly)
	return true
}
