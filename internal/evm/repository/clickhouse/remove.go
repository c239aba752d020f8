package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const (
	deleteBlockQuery        = `DELETE FROM evm_blocks WHERE network = ? AND height = ?`
	deleteTransactionsQuery = `DELETE FROM evm_transactions WHERE network = ? AND height = ?`
)

// RemoveBlock deletes the block row at height.
func (r *Repository) RemoveBlock(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_block", &err, time.Now())

	if err = r.conn.Exec(ctx, deleteBlockQuery, string(r.network), height); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// RemoveTransactions deletes every transaction mined at height.
func (r *Repository) RemoveTransactions(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_transactions", &err, time.Now())

	if err = r.conn.Exec(ctx, deleteTransactionsQuery, string(r.network), height); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}
