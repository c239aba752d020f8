// Package model defines domain models for EVM chain indexing.
package model

// Block is a chain block with its ordered transactions.
//
// A block read back from a repository carries no transactions; TxCount is then
// taken from the stored transaction rows.
type Block struct {
	Network      Network
	Height       uint64
	Hash         HexBlob
	TxCount      uint32
	Transactions []Transaction
}
