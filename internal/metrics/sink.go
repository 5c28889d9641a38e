package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"badgeserver/internal/config"
)

// sink buffers one kind of metric and writes it in batches, either when the
// batch reaches the flush threshold or on every tick.
type sink[T any] struct {
	name      string
	ch        chan T
	threshold int
	logger    *slog.Logger
	write     func(context.Context, []T) error
}

func newSink[T any](name string, cfg *config.MetricsConfig, logger *slog.Logger, write func(context.Context, []T) error) *sink[T] {
	return &sink[T]{
		name:      name,
		ch:        make(chan T, cfg.BufferSize),
		threshold: max(1, cfg.FlushThreshold),
		logger:    logger,
		write:     write,
	}
}

func (s *sink[T]) push(m T) {
	select {
	case s.ch <- m:
	default:
		s.logger.Warn("metrics buffer full, dropping metric", slog.String("sink", s.name))
	}
}

func (s *sink[T]) run(ctx context.Context, wg *sync.WaitGroup, shutdownCh <-chan struct{}, interval time.Duration) {
	defer wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, s.threshold)

	for {
		select {
		case <-ctx.Done():
			s.drainAndFlush(batch)
			return
		case <-shutdownCh:
			s.drainAndFlush(batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= s.threshold {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *sink[T]) drainAndFlush(batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.flush(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (s *sink[T]) flush(ctx context.Context, batch []T) {
	if err := s.write(ctx, batch); err != nil {
		s.logger.Error("failed to write metrics batch",
			slog.String("sink", s.name),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
