package analytics

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Persister loads the counters at startup and saves them on a fixed interval
// and once more on Close.
type Persister struct {
	counters     *Counters
	store        Store
	interval     time.Duration
	logger       *slog.Logger
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewPersister(counters *Counters, store Store, interval time.Duration, logger *slog.Logger) *Persister {
	return &Persister{
		counters:   counters,
		store:      store,
		interval:   interval,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

// Load restores saved counters. Missing or malformed state leaves both
// arrays zeroed.
func (p *Persister) Load(ctx context.Context) {
	snap, err := p.store.Load(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		p.logger.Info("no saved analytics, starting from zero")
		p.counters.Restore(snap)
		return
	}
	if err != nil {
		p.logger.Warn("failed to load analytics, starting from zero", slog.String("error", err.Error()))
		p.counters.Restore(snap)
		return
	}
	if !p.counters.Restore(snap) {
		p.logger.Warn("saved analytics have the wrong shape, starting from zero")
		return
	}
	p.logger.Info("analytics restored")
}

func (p *Persister) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.loop(ctx)

	p.logger.Info("analytics persister started", slog.Duration("interval", p.interval))
}

func (p *Persister) Close() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.wg.Wait()
	})
}

func (p *Persister) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.finalSave()
			return
		case <-p.shutdownCh:
			p.finalSave()
			return
		case <-ticker.C:
			p.save(ctx)
		}
	}
}

func (p *Persister) finalSave() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.save(ctx)
}

func (p *Persister) save(ctx context.Context) {
	if err := p.store.Save(ctx, p.counters.Snapshot()); err != nil {
		p.logger.Error("failed to save analytics", slog.String("error", err.Error()))
	}
}
