package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

const insertBlockQuery = `
INSERT INTO evm_blocks (
	network,
	height,
	hash,
	tx_count
) VALUES`

// SaveBlock stores the block row unless one exists at that height.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	defer r.observe("save_block", &err, time.Now())

	exists, err := r.hasBlock(ctx, block.Height)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err = r.conn.Insert(ctx, insertBlockQuery,
		string(r.network),
		block.Height,
		block.Hash.String(),
		block.TxCount,
	); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}
