package pebble

import (
	"math/big"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

type blockRecord struct {
	Hash    string
	TxCount uint32
}

type txRecord struct {
	Height          uint64
	TxID            string
	Sender          string
	Recipient       string
	Amount          *big.Int
	Gas             uint64
	GasPrice        uint64
	Data            *string `rlp:"nil"`
	Successful      bool
	IsCall          bool
	IsDeployment    bool
	Topics          [][]string
	ContractCreated *string `rlp:"nil"`
	Function        string
}

func newTxRecord(tx model.Transaction) txRecord {
	rec := txRecord{
		Height:       tx.Height,
		TxID:         tx.TxID.String(),
		Sender:       tx.Sender.String(),
		Recipient:    tx.Recipient.String(),
		Amount:       tx.Amount.Int(),
		Gas:          tx.Gas,
		GasPrice:     tx.GasPrice,
		Successful:   tx.Successful,
		IsCall:       tx.IsContractCall(),
		IsDeployment: tx.IsContractDeployment(),
		Topics:       make([][]string, 0, len(tx.Topics)),
		Function:     tx.Function,
	}
	if tx.Data != nil {
		data := tx.Data.String()
		rec.Data = &data
	}
	if tx.ContractCreated != nil {
		created := tx.ContractCreated.String()
		rec.ContractCreated = &created
	}
	for _, log := range tx.Topics {
		topics := make([]string, 0, len(log))
		for _, topic := range log {
			topics = append(topics, topic.String())
		}
		rec.Topics = append(rec.Topics, topics)
	}
	return rec
}
