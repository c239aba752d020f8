package model

// Receipt carries the execution outcome of a transaction.
type Receipt struct {
	Logs            [][]HexBlob
	GasUsed         uint64
	HasStatus       bool
	Status          uint64
	ContractAddress Address
}
