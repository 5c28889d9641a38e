package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"badgeserver/internal/analytics"
	"badgeserver/internal/config"
	"badgeserver/internal/domain"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS analytics_snapshots (
	id         text PRIMARY KEY,
	snapshot   jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`
	loadSQL = `SELECT snapshot FROM analytics_snapshots WHERE id = $1`
	saveSQL = `INSERT INTO analytics_snapshots (id, snapshot, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at`
)

// AnalyticsRepository stores the usage counters as a single jsonb row per
// instance id.
type AnalyticsRepository struct {
	db querier
	id string
}

func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func NewAnalyticsRepository(ctx context.Context, pool *pgxpool.Pool, id string) (*AnalyticsRepository, error) {
	r := &AnalyticsRepository{db: pool, id: id}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func newAnalyticsRepository(db querier, id string) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, id: id}
}

func (r *AnalyticsRepository) migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *AnalyticsRepository) Load(ctx context.Context) (domain.AnalyticsSnapshot, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, loadSQL, r.id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AnalyticsSnapshot{}, analytics.ErrNoSnapshot
	}
	if err != nil {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("failed to load analytics: %w", err)
	}

	var snap domain.AnalyticsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("failed to decode analytics: %w", err)
	}
	return snap, nil
}

func (r *AnalyticsRepository) Save(ctx context.Context, snap domain.AnalyticsSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode analytics: %w", err)
	}
	if _, err := r.db.Exec(ctx, saveSQL, r.id, raw); err != nil {
		return fmt.Errorf("failed to save analytics: %w", err)
	}
	return nil
}
