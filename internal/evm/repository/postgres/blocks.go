package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const (
	hasBlockQuery = `SELECT EXISTS (SELECT 1 FROM evm_blocks WHERE network = $1 AND height = $2)`

	getBlockQuery = `
SELECT b.hash,
       (SELECT count(*) FROM evm_transactions t WHERE t.network = b.network AND t.height = b.height)
FROM evm_blocks b
WHERE b.network = $1 AND b.height = $2`

	insertBlockQuery = `
INSERT INTO evm_blocks (network, height, hash, tx_count)
VALUES ($1, $2, $3, $4)
ON CONFLICT (network, height) DO NOTHING`

	deleteBlockQuery = `DELETE FROM evm_blocks WHERE network = $1 AND height = $2`

	maxIndexedHeightQuery = `SELECT COALESCE(MAX(height), 0) FROM evm_blocks WHERE network = $1`
)

func (r *Repository) HasBlock(ctx context.Context, height uint64) (found bool, err error) {
	defer r.observe("has_block", &err, time.Now())

	h, err := safe.Int64(height)
	if err != nil {
		return false, err
	}
	if err = r.db.QueryRow(ctx, hasBlockQuery, string(r.network), h).Scan(&found); err != nil {
		return false, fmt.Errorf("query block exists: %w", err)
	}
	return found, nil
}

func (r *Repository) GetBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	defer r.observe("get_block", &err, time.Now())

	h, err := safe.Int64(height)
	if err != nil {
		return nil, err
	}

	var (
		hash    string
		txCount int64
	)
	err = r.db.QueryRow(ctx, getBlockQuery, string(r.network), h).Scan(&hash, &txCount)
	if errors.Is(err, pgx.ErrNoRows) {
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

	return &model.Block{Network: r.network, Height: height, Hash: blockHash, TxCount: count}, nil
}

// SaveBlock inserts the block row; an existing row at that height is kept.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	defer r.observe("save_block", &err, time.Now())

	h, err := safe.Int64(block.Height)
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, insertBlockQuery, string(r.network), h, block.Hash.String(), int64(block.TxCount)); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

func (r *Repository) RemoveBlock(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_block", &err, time.Now())

	h, err := safe.Int64(height)
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, deleteBlockQuery, string(r.network), h); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

func (r *Repository) MaxIndexedHeight(ctx context.Context) (height uint64, err error) {
	defer r.observe("max_indexed_height", &err, time.Now())

	var maxHeight int64
	if err = r.db.QueryRow(ctx, maxIndexedHeightQuery, string(r.network)).Scan(&maxHeight); err != nil {
		return 0, fmt.Errorf("query max indexed height: %w", err)
	}
	return safe.Uint64(maxHeight)
}
