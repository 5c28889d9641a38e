package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"badgeserver/internal/config"
)

// Copier is the part of a pgx pool the recorder writes through.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Recorder feeds Prometheus synchronously and, when a database is configured,
// batches the same metrics into Postgres.
type Recorder struct {
	prom         *Prometheus
	db           Copier
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *sink[HTTPMetric]
	business     *sink[BusinessMetric]
	infra        *sink[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder accepts a nil db; metrics then only reach Prometheus.
func NewRecorder(db Copier, prom *Prometheus, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		prom:       prom,
		db:         db,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.http = newSink("http", cfg, logger, r.writeHTTPBatch)
	r.business = newSink("business", cfg, logger, r.writeBusinessBatch)
	r.infra = newSink("infra", cfg, logger, r.writeInfraBatch)
	return r
}

func (r *Recorder) persisting() bool {
	return r.cfg.Enabled && r.db != nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	r.prom.observeHTTP(m)
	if r.persisting() {
		r.http.push(m)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	m := BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}
	r.prom.observeBusiness(m)
	if r.persisting() {
		r.business.push(m)
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	r.prom.observeInfra(m)
	if r.persisting() {
		r.infra.push(m)
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.persisting() {
		r.logger.Info("metrics persistence disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.http.run(ctx, &r.wg, r.shutdownCh, flushInterval)
	go r.business.run(ctx, &r.wg, r.shutdownCh, flushInterval)
	go r.infra.run(ctx, &r.wg, r.shutdownCh, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) writeHTTPBatch(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Route, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"http_metrics"},
		[]string{"time", "method", "route", "path", "status_code", "duration_ms", "client_ip", "error"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeBusinessBatch(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, _ := json.Marshal(m.Labels)
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"business_metrics"},
		[]string{"time", "metric_name", "value", "labels"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeInfraBatch(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
		}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"infra_metrics"},
		[]string{
			"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
			"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
		},
		pgx.CopyFromRows(rows),
	)
	return err
}
