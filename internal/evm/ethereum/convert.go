package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/safe"
)

type (
	rpcHeader struct {
		Number hexutil.Uint64 `json:"number"`
		Hash   common.Hash    `json:"hash"`
	}

	rpcBlock struct {
		rpcHeader
		Transactions []rpcTransaction `json:"transactions"`
	}

	rpcTransaction struct {
		Hash     common.Hash     `json:"hash"`
		From     common.Address  `json:"from"`
		To       *common.Address `json:"to"`
		Value    *hexutil.Big    `json:"value"`
		Gas      hexutil.Uint64  `json:"gas"`
		GasPrice *hexutil.Big    `json:"gasPrice"`
		Input    hexutil.Bytes   `json:"input"`
	}
)

// buildBlock converts a node block into the domain model. Receipts are not applied.
func buildBlock(src rpcBlock, network model.Network, coin model.Coin) (model.Block, error) {
	count, err := safe.Uint32(len(src.Transactions))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d tx count overflow: %w", uint64(src.Number), err)
	}

	height := uint64(src.Number)
	txs := make([]model.Transaction, 0, len(src.Transactions))
	for _, raw := range src.Transactions {
		tx, err := buildTransaction(raw, network, coin, height)
		if err != nil {
			return model.Block{}, fmt.Errorf("tx %s: %w", raw.Hash.Hex(), err)
		}
		txs = append(txs, tx)
	}

	return model.Block{
		Network:      network,
		Height:       height,
		Hash:         model.HexBlobFromBytes(src.Hash.Bytes()),
		TxCount:      count,
		Transactions: txs,
	}, nil
}

// buildTransaction converts a node transaction object mined at height.
func buildTransaction(src rpcTransaction, network model.Network, coin model.Coin, height uint64) (model.Transaction, error) {
	sender, err := addressOf(&src.From)
	if err != nil {
		return model.Transaction{}, err
	}
	recipient, err := addressOf(src.To)
	if err != nil {
		return model.Transaction{}, err
	}

	var gasPrice uint64
	if src.GasPrice != nil {
		price := src.GasPrice.ToInt()
		if !price.IsUint64() {
			return model.Transaction{}, fmt.Errorf("gas price %s overflows uint64", price)
		}
		gasPrice = price.Uint64()
	}

	var data *model.HexBlob
	if len(src.Input) > 0 {
		blob := model.HexBlobFromBytes(src.Input)
		data = &blob
	}

	return model.NewTransaction(
		network,
		height,
		model.HexBlobFromBytes(src.Hash.Bytes()),
		sender,
		recipient,
		model.NewAmount(src.Value.ToInt(), coin),
		uint64(src.Gas),
		gasPrice,
		data,
	), nil
}

// buildReceipt extracts topics, gas used, status and the created contract.
// Pre-Byzantium receipts carry a state root instead of a status.
func buildReceipt(src *types.Receipt) (model.Receipt, error) {
	logs := make([][]model.HexBlob, 0, len(src.Logs))
	for _, l := range src.Logs {
		topics := make([]model.HexBlob, 0, len(l.Topics))
		for _, topic := range l.Topics {
			topics = append(topics, model.HexBlobFromBytes(topic.Bytes()))
		}
		logs = append(logs, topics)
	}

	created, err := addressOf(&src.ContractAddress)
	if err != nil {
		return model.Receipt{}, err
	}

	return model.Receipt{
		Logs:            logs,
		GasUsed:         src.GasUsed,
		HasStatus:       len(src.PostState) == 0,
		Status:          src.Status,
		ContractAddress: created,
	}, nil
}

func addressOf(a *common.Address) (model.Address, error) {
	if a == nil {
		return model.NullAddress, nil
	}
	return model.NewAddress(strings.ToLower(a.Hex()))
}
