// Package repository selects and opens the configured block store backend.
package repository

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/repository/clickhouse"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/repository/pebble"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/repository/postgres"
	"github.com/goodnatureofminers/evm-indexer/internal/metrics"
)

// Supported backends.
const (
	StoreClickhouse = "clickhouse"
	StorePostgres   = "postgres"
	StorePebble     = "pebble"
)

// Config names the backend and its connection settings. Only the settings of
// the selected backend are read.
type Config struct {
	Store         string `long:"store" env:"STORE" default:"clickhouse" choice:"clickhouse" choice:"postgres" choice:"pebble" description:"Block store backend"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN   string `long:"postgres-dsn" env:"POSTGRES_DSN" description:"Postgres DSN"`
	PebblePath    string `long:"pebble-path" env:"PEBBLE_PATH" description:"Pebble data directory"`
}

// Open returns the repository for network on the configured backend.
func Open(ctx context.Context, cfg Config, network model.Network) (chain.Repository, error) {
	collector := metrics.NewRepository(cfg.Store)

	switch cfg.Store {
	case StoreClickhouse:
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, network, collector)
		if err != nil {
			return nil, fmt.Errorf("open clickhouse store: %w", err)
		}
		return repo, nil
	case StorePostgres:
		repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, network, collector)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return repo, nil
	case StorePebble:
		repo, err := pebble.Open(cfg.PebblePath, nil, network, collector)
		if err != nil {
			return nil, fmt.Errorf("open pebble store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
