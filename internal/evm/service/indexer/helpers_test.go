package indexer

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

var network = model.Mainnet

func testBlock(height uint64, hash string, txCount int) *model.Block {
	block := &model.Block{
		Network: network,
		Height:  height,
		Hash:    model.MustHexBlob(hash),
	}
	for i := 0; i < txCount; i++ {
		block.Transactions = append(block.Transactions, model.NewTransaction(
			network,
			height,
			model.MustHexBlob(fmt.Sprintf("%s%04x", hash, i)),
			model.MustAddress("0x52908400098527886e0f7030069857d2e4169ee7"),
			model.MustAddress("0xde709f2102306220921060314715629080e2fb77"),
			model.NewAmount(big.NewInt(int64(i+1)), model.ETH),
			21000,
			1,
			nil,
		))
	}
	block.TxCount = uint32(len(block.Transactions))
	return block
}
