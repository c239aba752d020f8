package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/goodnatureofminers/evm-indexer/pkg/safe"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertTransactionQuery = `
INSERT INTO evm_transactions (
	network, height, txid, sender, recipient, amount, gas, gas_price, data,
	successful, is_contract_call, is_contract_deployment, topics,
	contract_created, contract_function
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (network, txid) DO NOTHING`

	deleteTransactionsQuery = `DELETE FROM evm_transactions WHERE network = $1 AND height = $2`
)

// SaveTransaction inserts the transaction; an existing row with the same txid is kept.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	defer r.observe("save_transaction", &err, time.Now())

	args, err := transactionArgs(r.network, tx)
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, insertTransactionQuery, args...); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *Repository) RemoveTransactions(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_transactions", &err, time.Now())

	h, err := safe.Int64(height)
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, deleteTransactionsQuery, string(r.network), h); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}

func transactionArgs(network model.Network, tx model.Transaction) ([]any, error) {
	height, err := safe.Int64(tx.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	gas, err := safe.Int64(tx.Gas)
	if err != nil {
		return nil, fmt.Errorf("gas: %w", err)
	}
	gasPrice, err := safe.Int64(tx.GasPrice)
	if err != nil {
		return nil, fmt.Errorf("gas price: %w", err)
	}

	var data *string
	if tx.Data != nil {
		s := tx.Data.String()
		data = &s
	}
	var created *string
	if tx.ContractCreated != nil {
		s := tx.ContractCreated.String()
		created = &s
	}

	topics := make([][]string, 0, len(tx.Topics))
	for _, log := range tx.Topics {
		row := make([]string, 0, len(log))
		for _, topic := range log {
			row = append(row, topic.String())
		}
		topics = append(topics, row)
	}

	return []any{
		string(network),
		height,
		tx.TxID.String(),
		tx.Sender.String(),
		tx.Recipient.String(),
		pgtype.Numeric{Int: tx.Amount.Int(), Valid: true},
		gas,
		gasPrice,
		data,
		tx.Successful,
		tx.IsContractCall(),
		tx.IsContractDeployment(),
		topics,
		created,
		tx.Function,
	}, nil
}
