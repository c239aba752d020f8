package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by repositories when no record exists at the requested key.
	ErrNotFound = errors.New("not found")
	// ErrBlockUnavailable is returned by sources when the node has no block at a height.
	ErrBlockUnavailable = errors.New("block unavailable")
	// ErrReorgPastGenesis is returned when a reorg walk disagrees even at height 0.
	ErrReorgPastGenesis = errors.New("reorg reached genesis without a common block")
)

// TransportError wraps a failure talking to the ledger node.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StoreError wraps a failure of the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DeepReorgError is returned when a reorg walk exceeds the configured depth.
type DeepReorgError struct {
	Suspect  uint64
	MaxDepth uint64
}

func (e *DeepReorgError) Error() string {
	return fmt.Sprintf("reorg from height %d deeper than %d blocks", e.Suspect, e.MaxDepth)
}
