package analytics_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/analytics"
	"badgeserver/internal/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := analytics.NewFileStore(billy.NewMemory(), "state/analytics.json")

	snap := domain.AnalyticsSnapshot{
		VendorMonthly: make([]int64, domain.AnalyticsSlots),
		RawMonthly:    make([]int64, domain.AnalyticsSlots),
	}
	snap.VendorMonthly[4] = 12
	snap.RawMonthly[35] = 1

	require.NoError(t, store.Save(context.Background(), snap))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestFileStore_JSONShape(t *testing.T) {
	fs := billy.NewMemory()
	store := analytics.NewFileStore(fs, "analytics.json")

	require.NoError(t, store.Save(context.Background(), domain.AnalyticsSnapshot{
		VendorMonthly: []int64{1},
		RawMonthly:    []int64{2},
	}))

	data, err := fs.ReadFile("analytics.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendorMonthly":[1],"rawMonthly":[2]}`, string(data))
}

func TestFileStore_Missing(t *testing.T) {
	store := analytics.NewFileStore(billy.NewMemory(), "analytics.json")

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, analytics.ErrNoSnapshot)
}

func TestFileStore_Malformed(t *testing.T) {
	fs := billy.NewMemory()
	require.NoError(t, fs.WriteFile("analytics.json", []byte("{nope"), 0o644))

	_, err := analytics.NewFileStore(fs, "analytics.json").Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, analytics.ErrNoSnapshot)
}

type memStore struct {
	mu    sync.Mutex
	snap  domain.AnalyticsSnapshot
	err   error
	saves int
}

func (m *memStore) Load(context.Context) (domain.AnalyticsSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, m.err
}

func (m *memStore) Save(_ context.Context, s domain.AnalyticsSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s
	m.saves++
	return nil
}

func (m *memStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPersister_LoadRestores(t *testing.T) {
	saved := domain.AnalyticsSnapshot{
		VendorMonthly: make([]int64, domain.AnalyticsSlots),
		RawMonthly:    make([]int64, domain.AnalyticsSlots),
	}
	saved.VendorMonthly[1] = 5

	counters := analytics.NewCounters()
	p := analytics.NewPersister(counters, &memStore{snap: saved}, time.Hour, discardLogger())
	p.Load(context.Background())

	assert.Equal(t, saved, counters.Snapshot())
}

func TestPersister_LoadFailureResets(t *testing.T) {
	counters := analytics.NewCounters()
	counters.Record(analytics.BucketVendor)

	p := analytics.NewPersister(counters, &memStore{err: analytics.ErrNoSnapshot}, time.Hour, discardLogger())
	p.Load(context.Background())

	assert.Equal(t, make([]int64, domain.AnalyticsSlots), counters.Snapshot().VendorMonthly)
}

func TestPersister_SavesOnTickAndClose(t *testing.T) {
	counters := analytics.NewCounters()
	store := &memStore{}

	p := analytics.NewPersister(counters, store, 10*time.Millisecond, discardLogger())
	p.Start(context.Background())

	assert.Eventually(t, func() bool { return store.Saves() > 0 }, time.Second, 5*time.Millisecond)

	counters.Record(analytics.BucketRaw)
	before := store.Saves()
	p.Close()

	assert.Greater(t, store.Saves(), before)
	assert.Equal(t, counters.Snapshot(), store.snap)
}
