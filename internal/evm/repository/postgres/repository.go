// Package postgres stores indexed blocks and transactions in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=row_mock_test.go -package=$GOPACKAGE github.com/jackc/pgx/v5 Row

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}

	// DB is the subset of pgxpool.Pool used by the repository.
	DB interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Close()
	}
)

// Repository stores blocks and transactions of one network. Uniqueness is
// enforced by primary keys, so inserts are atomic insert-if-absent.
type Repository struct {
	db      DB
	network model.Network
	metrics Metrics
}

func NewRepository(ctx context.Context, dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool, network: network, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	r.db.Close()
	return nil
}

func (r *Repository) observe(operation string, err *error, started time.Time) {
	r.metrics.Observe(operation, r.network, *err, started)
	if *err != nil && !errors.Is(*err, chain.ErrNotFound) {
		*err = &chain.StoreError{Op: operation, Err: *err}
	}
}
