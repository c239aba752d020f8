// Package pebble is an embedded block and transaction store on top of
// cockroachdb/pebble, used for single-node deployments and tests.
package pebble

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, network model.Network, err error, started time.Time)
}

// Repository stores records of one network. Check-then-insert sequences are
// serialized by mu; writes are synced before returning.
type Repository struct {
	db      *pebble.DB
	network model.Network
	metrics Metrics
	mu      sync.Mutex
}

// Open opens or creates a store at path. A nil fs uses the OS filesystem.
func Open(path string, fs vfs.FS, network model.Network, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.New("pebble path is required")
	}

	opts := &pebble.Options{FS: fs}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	return &Repository{db: db, network: network, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) observe(operation string, err *error, started time.Time) {
	r.metrics.Observe(operation, r.network, *err, started)
	if *err != nil && !errors.Is(*err, chain.ErrNotFound) {
		*err = &chain.StoreError{Op: operation, Err: *err}
	}
}

func (r *Repository) HasBlock(ctx context.Context, height uint64) (found bool, err error) {
	defer r.observe("has_block", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return false, err
	}
	return r.exists(blockKey(r.network, height))
}

func (r *Repository) GetBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	defer r.observe("get_block", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	value, closer, err := r.db.Get(blockKey(r.network, height))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("block %d: %w", height, chain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get block: %w", err)
	}
	var rec blockRecord
	err = rlp.DecodeBytes(value, &rec)
	_ = closer.Close()
	if err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}

	hash, err := model.NewHexBlob(rec.Hash)
	if err != nil {
		return nil, fmt.Errorf("decode block hash: %w", err)
	}
	count, err := r.countTransactions(height)
	if err != nil {
		return nil, err
	}

	return &model.Block{Network: r.network, Height: height, Hash: hash, TxCount: count}, nil
}

// SaveBlock stores the block record unless one exists at that height.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	defer r.observe("save_block", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return err
	}
	value, err := rlp.EncodeToBytes(blockRecord{Hash: block.Hash.String(), TxCount: block.TxCount})
	if err != nil {
		return fmt.Errorf("encode block: %w", err)
	}

	key := blockKey(r.network, block.Height)
	r.mu.Lock()
	defer r.mu.Unlock()

	found, err := r.exists(key)
	if err != nil || found {
		return err
	}
	if err = r.db.Set(key, value, pebble.Sync); err != nil {
		return fmt.Errorf("set block: %w", err)
	}
	return nil
}

// SaveTransaction stores the transaction and its height index entry unless
// the txid is already present.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	defer r.observe("save_transaction", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return err
	}
	value, err := rlp.EncodeToBytes(newTxRecord(tx))
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}

	key := txKey(r.network, tx.TxID)
	r.mu.Lock()
	defer r.mu.Unlock()

	found, err := r.exists(key)
	if err != nil || found {
		return err
	}

	batch := r.db.NewBatch()
	defer batch.Close()
	if err = batch.Set(key, value, nil); err != nil {
		return fmt.Errorf("stage transaction: %w", err)
	}
	if err = batch.Set(heightIndexKey(r.network, tx.Height, tx.TxID), nil, nil); err != nil {
		return fmt.Errorf("stage height index: %w", err)
	}
	if err = batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) RemoveBlock(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_block", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return err
	}
	if err = r.db.Delete(blockKey(r.network, height), pebble.Sync); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// RemoveTransactions deletes every transaction indexed at height.
func (r *Repository) RemoveTransactions(ctx context.Context, height uint64) (err error) {
	defer r.observe("remove_transactions", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := heightIndexPrefix(r.network, height)
	iter, err := r.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upperBound(prefix)})
	if err != nil {
		return fmt.Errorf("open height index: %w", err)
	}

	batch := r.db.NewBatch()
	defer batch.Close()
	for iter.First(); iter.Valid(); iter.Next() {
		txid := iter.Key()[len(prefix):]
		if err = batch.Delete(append(networkPrefix(txPrefix, r.network), txid...), nil); err != nil {
			_ = iter.Close()
			return fmt.Errorf("stage transaction delete: %w", err)
		}
	}
	if err = iter.Close(); err != nil {
		return fmt.Errorf("scan height index: %w", err)
	}
	if err = batch.DeleteRange(prefix, upperBound(prefix), nil); err != nil {
		return fmt.Errorf("stage height index delete: %w", err)
	}
	if err = batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit transaction delete: %w", err)
	}
	return nil
}

// MaxIndexedHeight returns the highest stored block height, 0 when empty.
func (r *Repository) MaxIndexedHeight(ctx context.Context) (height uint64, err error) {
	defer r.observe("max_indexed_height", &err, time.Now())

	if err = ctx.Err(); err != nil {
		return 0, err
	}

	prefix := networkPrefix(blockPrefix, r.network)
	iter, err := r.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upperBound(prefix)})
	if err != nil {
		return 0, fmt.Errorf("open block index: %w", err)
	}
	defer func() {
		if closeErr := iter.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close block index: %w", closeErr)
		}
	}()

	if !iter.Last() {
		return 0, nil
	}
	return decodeHeight(iter.Key()[len(prefix):])
}

func (r *Repository) exists(key []byte) (bool, error) {
	_, closer, err := r.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key[:1], err)
	}
	return true, closer.Close()
}

func (r *Repository) countTransactions(height uint64) (uint32, error) {
	prefix := heightIndexPrefix(r.network, height)
	iter, err := r.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upperBound(prefix)})
	if err != nil {
		return 0, fmt.Errorf("open height index: %w", err)
	}

	var count uint32
	for iter.First(); iter.Valid(); iter.Next() {
		count++
	}
	if err := iter.Close(); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func decodeHeight(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("malformed height key of %d bytes", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}
