package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
		BlockHash(ctx context.Context, height uint64) (model.HexBlob, error)
	}
	Repository interface {
		HasBlock(ctx context.Context, height uint64) (bool, error)
		GetBlock(ctx context.Context, height uint64) (*model.Block, error)
		SaveBlock(ctx context.Context, block model.Block) error
		SaveTransaction(ctx context.Context, tx model.Transaction) error
		RemoveBlock(ctx context.Context, height uint64) error
		RemoveTransactions(ctx context.Context, height uint64) error
		MaxIndexedHeight(ctx context.Context) (uint64, error)
	}

	RangeIndexer interface {
		IndexRange(ctx context.Context, start, end uint64) RangeResult
	}
	ReorgHandler interface {
		HandleReorg(ctx context.Context, suspect uint64) (uint64, error)
	}

	RangeIndexerMetrics interface {
		ObserveHeight(status string, transactions int, started time.Time)
		ObserveRange(failed bool, started time.Time)
	}
	SynchronizerMetrics interface {
		SetHeights(network, scheduled uint64)
		ObservePoll(err error, started time.Time)
		ObserveReorg(depth uint64, err error)
	}
)
