package chain

import (
	"context"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

// Repository persists blocks and transactions of a single network.
// Every call is atomic on its own; there is no transaction spanning calls.
type Repository interface {
	HasBlock(ctx context.Context, height uint64) (bool, error)
	// GetBlock returns the stored block without transactions or ErrNotFound.
	GetBlock(ctx context.Context, height uint64) (*model.Block, error)
	// SaveBlock is a no-op when a block at that height exists.
	SaveBlock(ctx context.Context, block model.Block) error
	// SaveTransaction is a no-op when a transaction with that txid exists.
	SaveTransaction(ctx context.Context, tx model.Transaction) error
	RemoveBlock(ctx context.Context, height uint64) error
	RemoveTransactions(ctx context.Context, height uint64) error
	// MaxIndexedHeight returns the highest stored block height, 0 when empty.
	MaxIndexedHeight(ctx context.Context) (uint64, error)
	Close() error
}
