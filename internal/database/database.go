package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool used for health probes
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions sizes the connection pool
type PoolOptions struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLifetime time.Duration
	// StatementTimeout bounds every statement on the session; zero keeps the server default
	StatementTimeout time.Duration
}

// NewPool opens a pgx pool, pins each session to UTC and verifies it with a ping.
// Cycle bounds and cooldowns are computed in UTC, so session time zone matters
// for the now() defaults in the schema.
func NewPool(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := opts.MaxConns
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	if opts.MaxLifetime > 0 {
		cfg.MaxConnLifetime = opts.MaxLifetime
	}
	if opts.MaxIdle > 0 {
		cfg.MaxConnIdleTime = opts.MaxIdle
	}

	rt := cfg.ConnConfig.RuntimeParams
	rt[RuntimeParamTimeZone] = "UTC"
	rt[RuntimeParamApplicationName] = ApplicationName
	if opts.StatementTimeout > 0 {
		rt[RuntimeParamStatementTimeout] = strconv.FormatInt(opts.StatementTimeout.Milliseconds(), 10)
	}
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database)
	return pool, nil
}
