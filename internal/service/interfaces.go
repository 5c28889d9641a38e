package service

//go:generate mockery

import (
	"context"

	"badgeserver/internal/analytics"
	"badgeserver/internal/domain"
	"badgeserver/internal/upstream"
)

type Cache interface {
	Get(key string) (domain.CacheEntry, bool)
	Set(key string, badge domain.Badge, format domain.Format) domain.CacheEntry
}

type Fetcher interface {
	Fetch(ctx context.Context, r upstream.Request) (*upstream.Response, error)
}

type Counter interface {
	Record(b analytics.Bucket)
	Snapshot() domain.AnalyticsSnapshot
}

type CaptureValidator interface {
	ValidateCaptures(captures map[string]string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
