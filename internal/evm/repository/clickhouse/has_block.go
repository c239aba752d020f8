package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const hasBlockQuery = `
SELECT count() AS blocks
FROM evm_blocks
WHERE network = ? AND height = ?`

// HasBlock reports whether a block is stored at height.
func (r *Repository) HasBlock(ctx context.Context, height uint64) (found bool, err error) {
	defer r.observe("has_block", &err, time.Now())

	return r.hasBlock(ctx, height)
}

func (r *Repository) hasBlock(ctx context.Context, height uint64) (bool, error) {
	var count uint64
	if err := r.conn.QueryRow(ctx, hasBlockQuery, string(r.network), height).Scan(&count); err != nil {
		return false, fmt.Errorf("query block count: %w", err)
	}
	return count > 0, nil
}
