package model

// Transaction is a transaction as recorded in a block, enriched by its receipt
// for contract calls and deployments.
type Transaction struct {
	Network   Network
	Height    uint64
	TxID      HexBlob
	Sender    Address
	Recipient Address
	Amount    Amount
	Gas       uint64
	GasPrice  uint64
	Data      *HexBlob

	Successful      bool
	Topics          [][]HexBlob
	ContractCreated *Address
	// Function labels the called method of a contract call, see MethodLabels.
	Function string
}

// NewTransaction builds a transaction in its pre-receipt state.
// Empty call data is dropped.
func NewTransaction(
	network Network,
	height uint64,
	txid HexBlob,
	sender, recipient Address,
	amount Amount,
	gas, gasPrice uint64,
	data *HexBlob,
) Transaction {
	if data != nil && data.IsEmpty() {
		data = nil
	}
	return Transaction{
		Network:    network,
		Height:     height,
		TxID:       txid,
		Sender:     sender,
		Recipient:  recipient,
		Amount:     amount,
		Gas:        gas,
		GasPrice:   gasPrice,
		Data:       data,
		Successful: true,
		Topics:     [][]HexBlob{},
	}
}

// IsContractDeployment reports whether the transaction creates a contract.
func (t Transaction) IsContractDeployment() bool {
	return t.Recipient.IsNull()
}

// IsContractCall reports whether the transaction carries call data to an existing account.
func (t Transaction) IsContractCall() bool {
	return t.Data != nil && !t.Data.IsEmpty() && !t.IsContractDeployment()
}

// ApplyReceipt enriches the transaction with its execution outcome.
func (t *Transaction) ApplyReceipt(r Receipt) {
	topics := make([][]HexBlob, 0, len(r.Logs))
	for _, log := range r.Logs {
		topics = append(topics, append([]HexBlob(nil), log...))
	}
	t.Topics = topics

	if t.IsContractDeployment() {
		created := r.ContractAddress
		t.ContractCreated = &created
	}
	if r.HasStatus {
		t.Successful = r.Status == 1
	}
	t.Gas = r.GasUsed
}
