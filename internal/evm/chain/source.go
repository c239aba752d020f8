// Package chain defines contracts and errors shared between EVM indexing components.
package chain

import (
	"context"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

// Source reads blocks from a ledger node.
type Source interface {
	LatestHeight(ctx context.Context) (uint64, error)
	// FetchBlock returns the block with transactions; contract calls and
	// deployments are already enriched with their receipts.
	FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	FetchReceipt(ctx context.Context, txid model.HexBlob) (model.Receipt, error)
	BlockHash(ctx context.Context, height uint64) (model.HexBlob, error)
}
