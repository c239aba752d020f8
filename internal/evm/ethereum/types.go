package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveThrottle(wait time.Duration)
	}

	// NodeClient is the subset of the JSON-RPC API the Source relies on.
	// Block methods return nil without error when the node has no such block.
	NodeClient interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, height uint64) (*rpcBlock, error)
		HeaderByNumber(ctx context.Context, height uint64) (*rpcHeader, error)
		TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	}
)
