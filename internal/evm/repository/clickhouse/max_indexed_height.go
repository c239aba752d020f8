package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxIndexedHeightQuery = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height
FROM evm_blocks
WHERE network = ?`

// MaxIndexedHeight returns the highest stored height, 0 for an empty store.
func (r *Repository) MaxIndexedHeight(ctx context.Context) (height uint64, err error) {
	defer r.observe("max_indexed_height", &err, time.Now())

	if err = r.conn.QueryRow(ctx, maxIndexedHeightQuery, string(r.network)).Scan(&height); err != nil {
		return 0, fmt.Errorf("query max indexed height: %w", err)
	}
	return height, nil
}
