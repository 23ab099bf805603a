package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tour-campaigns/internal/config/configs"
)

// pingTimeout bounds the connectivity check on startup.
const pingTimeout = 5 * time.Second

// NewPostgresPool creates a new pgxpool.Pool with the provided configuration
// and verifies connectivity with a ping. If pinging fails, the pool is
// closed and an error is returned. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
