package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"badgeserver/internal/analytics"
	"badgeserver/internal/badge"
	"badgeserver/internal/domain"
	"badgeserver/internal/metrics"
	"badgeserver/internal/router"
	"badgeserver/internal/vendor"
)

var (
	ErrNotVendorRoute  = errors.New("route is not vendor backed")
	ErrNotGenericRoute = errors.New("route is not a generic badge route")
	ErrUnknownColor    = errors.New("color is neither a colorscheme nor six hex digits")
)

type BadgeService struct {
	cache     Cache
	fetcher   Fetcher
	counter   Counter
	validator CaptureValidator
	recorder  BusinessRecorder
	logger    *slog.Logger
	group     singleflight.Group
}

func NewBadgeService(
	cache Cache,
	fetcher Fetcher,
	counter Counter,
	validator CaptureValidator,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *BadgeService {
	return &BadgeService{
		cache:     cache,
		fetcher:   fetcher,
		counter:   counter,
		validator: validator,
		recorder:  recorder,
		logger:    logger,
	}
}

// CacheKey identifies a vendor badge: the whole matched path plus the label
// override.
func CacheKey(path, label string) string {
	return path + "?label=" + label
}

// Vendor returns the badge for a vendor route, from the cache when a fresh
// entry exists. Concurrent misses on one key share a single upstream fetch.
func (s *BadgeService) Vendor(ctx context.Context, m router.Match, label string) (domain.Badge, error) {
	if m.Route == nil || m.Route.Kind != router.KindVendor {
		return domain.Badge{}, ErrNotVendorRoute
	}
	s.counter.Record(analytics.BucketVendor)

	name := m.Route.Name
	key := CacheKey(m.Path, label)
	if entry, ok := s.cache.Get(key); ok {
		s.recorder.RecordBusiness(metrics.CacheHit, 1, map[string]string{"vendor": name})
		return entry.Badge, nil
	}
	s.recorder.RecordBusiness(metrics.CacheMiss, 1, map[string]string{"vendor": name})

	// The shared fetch must not be cut short by whichever caller started it.
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(key, func() (any, error) {
		if entry, ok := s.cache.Get(key); ok {
			return entry.Badge, nil
		}
		b := s.resolve(fetchCtx, m, label)
		s.cache.Set(key, b, m.Format)
		return b, nil
	})
	return v.(domain.Badge), nil
}

func (s *BadgeService) resolve(ctx context.Context, m router.Match, label string) domain.Badge {
	in := m.Route.Integration

	if err := s.validator.ValidateCaptures(m.Params); err != nil {
		s.logger.Debug("rejected vendor captures",
			slog.String("route", m.Route.Name),
			slog.String("error", err.Error()))
		return domain.NewBadge(cmp.Or(label, in.DefaultLabel(m.Params)), vendor.ValueInvalid, domain.ColorLightGrey)
	}

	start := time.Now()
	b, err := vendor.Resolve(ctx, s.fetcher, in, m.Params, label)
	s.recorder.RecordBusiness(metrics.UpstreamLatency, float64(time.Since(start).Microseconds())/1000.0,
		map[string]string{"vendor": m.Route.Name})

	if err != nil {
		kind := vendor.KindOf(err)
		s.recorder.RecordBusiness(metrics.UpstreamFailure, 1, map[string]string{
			"vendor": m.Route.Name,
			"kind":   kind.String(),
		})
		s.logger.Warn("vendor resolution failed",
			slog.String("route", m.Route.Name),
			slog.String("kind", kind.String()),
			slog.String("value", b.Value),
			slog.String("error", err.Error()))
	}
	return b
}

// Generic composes a badge from the path of an explicit or legacy route.
// Explicit segments are unescaped; the legacy route takes its color from the
// color query parameter.
func (s *BadgeService) Generic(m router.Match, query url.Values) (domain.Badge, error) {
	if m.Route == nil {
		return domain.Badge{}, ErrNotGenericRoute
	}

	var label, value, color string
	switch m.Route.Kind {
	case router.KindExplicit:
		label = badge.Unescape(m.Params.Get("label"))
		value = badge.Unescape(m.Params.Get("value"))
		color = badge.Unescape(m.Params.Get("color"))
	case router.KindLegacy:
		label = m.Params.Get("label")
		value = m.Params.Get("value")
		color = query.Get("color")
	default:
		return domain.Badge{}, ErrNotGenericRoute
	}

	s.counter.Record(analytics.BucketRaw)
	s.recorder.RecordBusiness(metrics.RawBadge, 1, map[string]string{"vendor": m.Route.Name})

	if color == "" {
		return domain.NewBadge(label, value, domain.ColorLightGrey), nil
	}
	if badge.IsSixHex(color) {
		return domain.NewHexBadge(label, value, color), nil
	}
	if scheme, ok := domain.ParseColorscheme(color); ok {
		return domain.NewBadge(label, value, scheme), nil
	}
	return domain.Badge{}, ErrUnknownColor
}

func (s *BadgeService) Analytics() domain.AnalyticsSnapshot {
	return s.counter.Snapshot()
}
