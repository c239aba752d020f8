package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/safe"
)

const getBlockQuery = `
SELECT
	hash,
	(
		SELECT uniqExact(txid)
		FROM evm_transactions
		WHERE network = ? AND height = ?
	) AS tx_count
FROM evm_blocks FINAL
WHERE network = ? AND height = ?
LIMIT 1`

// GetBlock returns the stored block at height without its transactions.
func (r *Repository) GetBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	defer r.observe("get_block", &err, time.Now())

	var (
		hash    string
		txCount uint64
	)
	network := string(r.network)
	err = r.conn.QueryRow(ctx, getBlockQuery, network, height, network, height).Scan(&hash, &txCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("block %d: %w", height, chain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query block: %w", err)
	}

	blockHash, err := model.NewHexBlob(hash)
	if err != nil {
		return nil, fmt.Errorf("decode block hash: %w", err)
	}
	count, err := safe.Uint32(txCount)
	if err != nil {
		return nil, fmt.Errorf("tx count: %w", err)
	}

	return &model.Block{
		Network: r.network,
		Height:  height,
		Hash:    blockHash,
		TxCount: count,
	}, nil
}
