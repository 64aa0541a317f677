package database

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	MaxConns       int32
	AcquireTimeout time.Duration
	QueryTimeout   time.Duration
}

// New builds the bounded connection pool. Acquisition queues up to
// AcquireTimeout when all connections are busy; connections found dead are
// discarded by the pool's health check rather than handed back out.
func New(ctx context.Context, dsn string, pc PoolConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if pc.MaxConns > 0 {
		cfg.MaxConns = pc.MaxConns
	}
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.MaxConnIdleTime = 5 * time.Minute
	if pc.AcquireTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = pc.AcquireTimeout
	}
	if pc.QueryTimeout > 0 {
		// Server-side backstop; the gateway also bounds each statement
		// with a context deadline.
		cfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(pc.QueryTimeout.Milliseconds(), 10)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pc.AcquireTimeout)
	defer cancel()
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}
