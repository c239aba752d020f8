package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}

	// Conn is the subset of a ClickHouse connection used by the repository.
	Conn interface {
		QueryRow(ctx context.Context, query string, args ...any) Row
		Exec(ctx context.Context, query string, args ...any) error
		// Insert appends a single row through a native insert batch.
		Insert(ctx context.Context, query string, values ...any) error
		Close() error
	}

	Row interface {
		Scan(dest ...any) error
	}
)

// Repository stores blocks and transactions of one network in ClickHouse.
type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: &nativeConn{conn: conn}, network: network, metrics: metrics}, nil
}

// Close closes the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func (r *Repository) observe(operation string, err *error, started time.Time) {
	r.metrics.Observe(operation, r.network, *err, started)
	if *err != nil && !errors.Is(*err, chain.ErrNotFound) {
		*err = &chain.StoreError{Op: operation, Err: *err}
	}
}

type nativeConn struct {
	conn driver.Conn
}

func (c *nativeConn) QueryRow(ctx context.Context, query string, args ...any) Row {
	return c.conn.QueryRow(ctx, query, args...)
}

func (c *nativeConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c *nativeConn) Insert(ctx context.Context, query string, values ...any) error {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	if err = batch.Append(values...); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append row: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

func (c *nativeConn) Close() error {
	return c.conn.Close()
}
