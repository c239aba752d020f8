package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

const (
	hasTransactionQuery = `
SELECT count() AS transactions
FROM evm_transactions
WHERE network = ? AND txid = ?`

	insertTransactionQuery = `
INSERT INTO evm_transactions (
	network,
	height,
	txid,
	sender,
	recipient,
	amount,
	gas,
	gas_price,
	data,
	successful,
	is_contract_call,
	is_contract_deployment,
	topics,
	contract_created,
	contract_function
) VALUES`
)

// SaveTransaction stores the transaction unless its txid is already present.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	defer r.observe("save_transaction", &err, time.Now())

	var count uint64
	if err = r.conn.QueryRow(ctx, hasTransactionQuery, string(r.network), tx.TxID.String()).Scan(&count); err != nil {
		return fmt.Errorf("query transaction count: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err = r.conn.Insert(ctx, insertTransactionQuery,
		string(r.network),
		tx.Height,
		tx.TxID.String(),
		tx.Sender.String(),
		tx.Recipient.String(),
		tx.Amount.Int(),
		tx.Gas,
		tx.GasPrice,
		optionalString(tx.Data),
		tx.Successful,
		tx.IsContractCall(),
		tx.IsContractDeployment(),
		topicStrings(tx.Topics),
		optionalString(tx.ContractCreated),
		tx.Function,
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func optionalString[T fmt.Stringer](v *T) *string {
	if v == nil {
		return nil
	}
	s := (*v).String()
	return &s
}

func topicStrings(topics [][]model.HexBlob) [][]string {
	out := make([][]string, 0, len(topics))
	for _, log := range topics {
		row := make([]string, 0, len(log))
		for _, topic := range log {
			row = append(row, topic.String())
		}
		out = append(out, row)
	}
	return out
}
