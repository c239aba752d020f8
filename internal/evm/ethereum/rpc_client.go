package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"go.uber.org/ratelimit"
)

const (
	opBlockNumber      = "eth_blockNumber"
	opGetBlockByNumber = "eth_getBlockByNumber"
	opGetReceipt       = "eth_getTransactionReceipt"
)

// RPCClient wraps a go-ethereum rpc client with pacing and metrics instrumentation.
type RPCClient struct {
	raw        *rpc.Client
	eth        *ethclient.Client
	limiter    ratelimit.Limiter
	timeout    time.Duration
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client. A nil limiter disables
// pacing and a zero timeout leaves call deadlines to the caller.
func NewRPCClient(raw *rpc.Client, limiter ratelimit.Limiter, timeout time.Duration, rpcMetrics RPCMetrics) *RPCClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCClient{
		raw:        raw,
		eth:        ethclient.NewClient(raw),
		limiter:    limiter,
		timeout:    timeout,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to an http(s) or ws(s) JSON-RPC endpoint.
func Dial(ctx context.Context, url string, limiter ratelimit.Limiter, timeout time.Duration, rpcMetrics RPCMetrics) (*RPCClient, error) {
	raw, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, &chain.TransportError{Op: "dial", Err: err}
	}
	return NewRPCClient(raw, limiter, timeout, rpcMetrics), nil
}

// Close releases the underlying connection.
func (r *RPCClient) Close() {
	r.raw.Close()
}

// BlockNumber returns the height of the most recent block.
func (r *RPCClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	ctx, done := r.begin(ctx, opBlockNumber)
	defer func() { err = done(err) }()

	return r.eth.BlockNumber(ctx)
}

// BlockByNumber returns the block with full transaction objects.
func (r *RPCClient) BlockByNumber(ctx context.Context, height uint64) (block *rpcBlock, err error) {
	ctx, done := r.begin(ctx, opGetBlockByNumber)
	defer func() { err = done(err) }()

	err = r.raw.CallContext(ctx, &block, opGetBlockByNumber, hexutil.EncodeUint64(height), true)
	return block, err
}

// HeaderByNumber returns the block number and hash without transaction bodies.
func (r *RPCClient) HeaderByNumber(ctx context.Context, height uint64) (header *rpcHeader, err error) {
	ctx, done := r.begin(ctx, opGetBlockByNumber)
	defer func() { err = done(err) }()

	err = r.raw.CallContext(ctx, &header, opGetBlockByNumber, hexutil.EncodeUint64(height), false)
	return header, err
}

// TransactionReceipt returns the receipt of a mined transaction.
func (r *RPCClient) TransactionReceipt(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error) {
	ctx, done := r.begin(ctx, opGetReceipt)
	defer func() { err = done(err) }()

	return r.eth.TransactionReceipt(ctx, hash)
}

// begin waits for a limiter slot and returns the call context together with a
// completion func that records metrics and wraps transport failures.
func (r *RPCClient) begin(ctx context.Context, op string) (context.Context, func(error) error) {
	waitStarted := time.Now()
	r.limiter.Take()
	r.rpcMetrics.ObserveThrottle(time.Since(waitStarted))

	cancel := context.CancelFunc(func() {})
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
	}

	started := time.Now()
	return ctx, func(err error) error {
		cancel()
		r.rpcMetrics.Observe(op, err, started)
		if err != nil {
			return &chain.TransportError{Op: op, Err: err}
		}
		return nil
	}
}
