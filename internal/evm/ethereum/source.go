// Package ethereum reads EVM blocks and receipts over JSON-RPC.
package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

// Source implements chain.Source for an EVM node.
type Source struct {
	rpc     NodeClient
	labels  model.MethodLabels
	network model.Network
	coin    model.Coin
}

// NewSource creates a Source labeling contract calls with labels.
func NewSource(rpc NodeClient, labels model.MethodLabels, network model.Network, coin model.Coin) *Source {
	return &Source{
		rpc:     rpc,
		labels:  labels,
		network: network,
		coin:    coin,
	}
}

// LatestHeight returns the current chainhead height.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	return s.rpc.BlockNumber(ctx)
}

// FetchBlock retrieves the block at height; contract calls and deployments are
// enriched from their receipts.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	src, err := s.rpc.BlockByNumber(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("get block at height %d: %w", height, err)
	}
	if src == nil {
		return nil, fmt.Errorf("block at height %d: %w", height, chain.ErrBlockUnavailable)
	}

	block, err := buildBlock(*src, s.network, s.coin)
	if err != nil {
		return nil, fmt.Errorf("convert block %d: %w", height, err)
	}

	for i := range block.Transactions {
		tx := &block.Transactions[i]
		if tx.IsContractCall() || tx.IsContractDeployment() {
			receipt, err := s.FetchReceipt(ctx, tx.TxID)
			if err != nil {
				return nil, fmt.Errorf("receipt of tx %s at height %d: %w", tx.TxID, height, err)
			}
			tx.ApplyReceipt(receipt)
		}
		tx.Function = s.labels.Label(*tx)
	}

	return &block, nil
}

// FetchReceipt returns the execution outcome of txid.
func (s *Source) FetchReceipt(ctx context.Context, txid model.HexBlob) (model.Receipt, error) {
	src, err := s.rpc.TransactionReceipt(ctx, common.HexToHash(txid.String()))
	if err != nil {
		return model.Receipt{}, err
	}
	return buildReceipt(src)
}

// BlockHash returns the canonical hash at height without transaction bodies.
func (s *Source) BlockHash(ctx context.Context, height uint64) (model.HexBlob, error) {
	header, err := s.rpc.HeaderByNumber(ctx, height)
	if err != nil {
		return model.HexBlob{}, fmt.Errorf("get header at height %d: %w", height, err)
	}
	if header == nil {
		return model.HexBlob{}, fmt.Errorf("header at height %d: %w", height, chain.ErrBlockUnavailable)
	}
	return model.HexBlobFromBytes(header.Hash.Bytes()), nil
}
